package dialog

// Step is the dialog's position in the registration sequence. Steps only
// move forward; there is no back operation.
type Step int

const (
	StepName Step = iota
	StepPhone
	StepPackage
	StepPrice
	StepDueDate
	StepServer
	StepNotes
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepName:
		return "name"
	case StepPhone:
		return "phone"
	case StepPackage:
		return "package"
	case StepPrice:
		return "price"
	case StepDueDate:
		return "due_date"
	case StepServer:
		return "server"
	case StepNotes:
		return "notes"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// Phase distinguishes picking from a catalog-backed step's options from the
// one-shot free-text sub-state entered through the step's custom sentinel.
type Phase int

const (
	PhaseSelect Phase = iota
	PhaseCustom
)
