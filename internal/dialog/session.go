package dialog

// Draft is the partially filled client record. Each step of the dialog sets
// exactly one field; a field once set is never mutated by a later step.
type Draft struct {
	Name    string
	Phone   string
	Package string
	Price   string
	DueDate string
	Server  string
	Notes   string
}

// Complete reports whether every required field is set. Notes is optional.
func (d Draft) Complete() bool {
	return d.Name != "" &&
		d.Phone != "" &&
		d.Package != "" &&
		d.Price != "" &&
		d.DueDate != "" &&
		d.Server != ""
}

// Record is a finished draft together with the operator who entered it.
type Record struct {
	OwnerID int64
	Draft
}

// Session tracks one actor's progress through the registration dialog.
// Sessions exist only while a dialog is in flight; finalization deletes them.
type Session struct {
	ActorID int64
	Step    Step
	Phase   Phase
	Draft   Draft
}

func NewSession(actorID int64) *Session {
	return &Session{
		ActorID: actorID,
		Step:    StepName,
	}
}
