package dialog

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

var (
	// ErrInvalidInput marks a reply the current step rejected. The returned
	// Reply repeats the step's prompt unchanged; the draft is untouched.
	ErrInvalidInput = errors.New("dialog: invalid input")

	// ErrSaveFailed marks a finalization the record store refused. The
	// session stays at the terminal step with the draft intact; the actor's
	// next message retries the handoff.
	ErrSaveFailed = errors.New("dialog: save failed")
)

// Saver persists a finalized record. Every successful call inserts a new
// row; the engine never updates or merges prior records.
type Saver interface {
	Save(rec Record) error
}

// Reply is the outbound prompt for an actor. Options, when present, are
// rendered by the transport as quick-select buttons; otherwise the transport
// expects free text.
type Reply struct {
	Text    string
	Options []string
}

// Engine drives the registration dialog: one authoritative state machine
// per actor, keyed by the store passed in explicitly.
type Engine struct {
	store   *Store
	catalog *Catalog
	saver   Saver
	now     func() time.Time

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewEngine(store *Store, catalog *Catalog, saver Saver) *Engine {
	return &Engine{
		store:   store,
		catalog: catalog,
		saver:   saver,
		now:     time.Now,
		locks:   make(map[int64]*sync.Mutex),
	}
}

// actorLock serializes transitions per actor. Different actors proceed
// concurrently; two replies from one actor never interleave.
func (e *Engine) actorLock(actorID int64) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	lock, ok := e.locks[actorID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[actorID] = lock
	}

	return lock
}

// HandleReply feeds one inbound message into the actor's dialog. With no
// active session it starts a fresh one at the name step and returns the
// first prompt; the triggering message itself is not consumed as a value.
func (e *Engine) HandleReply(actorID int64, text string) (Reply, error) {
	lock := e.actorLock(actorID)
	lock.Lock()
	defer lock.Unlock()

	sess, ok := e.store.Get(actorID)
	if !ok {
		sess = NewSession(actorID)
		e.store.Put(sess)

		return e.prompt(sess), nil
	}

	return e.dispatch(sess, strings.TrimSpace(text))
}

// Active reports whether the actor has a dialog in progress.
func (e *Engine) Active(actorID int64) bool {
	_, ok := e.store.Get(actorID)

	return ok
}

// Cancel aborts the actor's dialog, if any. The draft is discarded.
func (e *Engine) Cancel(actorID int64) {
	lock := e.actorLock(actorID)
	lock.Lock()
	defer lock.Unlock()

	e.store.Delete(actorID)
}

func (e *Engine) dispatch(sess *Session, text string) (Reply, error) {
	switch sess.Step {
	case StepName:
		return e.handleName(sess, text)
	case StepPhone:
		return e.handlePhone(sess, text)
	case StepPackage:
		return e.handleCatalogStep(sess, text, e.catalog.Packages(), PackageCustom, StepPrice,
			func(d *Draft, v string) { d.Package = v })
	case StepPrice:
		return e.handleCatalogStep(sess, text, e.catalog.Prices(), PriceCustom, StepDueDate,
			func(d *Draft, v string) { d.Price = v })
	case StepDueDate:
		return e.handleCatalogStep(sess, text, e.catalog.SuggestDueDates(sess.Draft.Package, e.now()), DueDateCustom, StepServer,
			func(d *Draft, v string) { d.DueDate = v })
	case StepServer:
		return e.handleCatalogStep(sess, text, e.catalog.Servers(), ServerCustom, StepNotes,
			func(d *Draft, v string) { d.Server = v })
	case StepNotes:
		return e.handleNotes(sess, text)
	case StepDone:
		return e.finalize(sess)
	default:
		return Reply{}, fmt.Errorf("dialog: unknown step %d for actor %d", sess.Step, sess.ActorID)
	}
}

func (e *Engine) handleName(sess *Session, text string) (Reply, error) {
	if text == "" {
		return e.prompt(sess), ErrInvalidInput
	}

	sess.Draft.Name = text
	sess.Step = StepPhone

	return e.prompt(sess), nil
}

func (e *Engine) handlePhone(sess *Session, text string) (Reply, error) {
	if text == "" {
		return e.prompt(sess), ErrInvalidInput
	}

	sess.Draft.Phone = text
	sess.Step = StepPackage

	return e.prompt(sess), nil
}

// handleCatalogStep is the shared transition for the catalog-backed steps:
// an exact non-sentinel match sets the field and advances, the sentinel
// enters the one-shot free-text sub-state, anything else is rejected with
// the prompt re-issued unchanged.
func (e *Engine) handleCatalogStep(sess *Session, text string, options []string, sentinel string, next Step, set func(*Draft, string)) (Reply, error) {
	if sess.Phase == PhaseCustom {
		if text == "" {
			return e.prompt(sess), ErrInvalidInput
		}

		set(&sess.Draft, text)
		sess.Phase = PhaseSelect
		sess.Step = next

		return e.prompt(sess), nil
	}

	if text == sentinel {
		sess.Phase = PhaseCustom

		return e.prompt(sess), nil
	}

	for _, opt := range options {
		if opt == sentinel {
			continue
		}

		if text == opt {
			set(&sess.Draft, text)
			sess.Step = next

			return e.prompt(sess), nil
		}
	}

	return e.prompt(sess), ErrInvalidInput
}

func (e *Engine) handleNotes(sess *Session, text string) (Reply, error) {
	if text == "" {
		return e.prompt(sess), ErrInvalidInput
	}

	if isSkipSignal(text) {
		sess.Draft.Notes = ""
	} else {
		sess.Draft.Notes = text
	}

	sess.Step = StepDone

	return e.finalize(sess)
}

// finalize hands the completed record to the saver. Success deletes the
// session; failure leaves it untouched at the terminal step so the next
// reply retries with the same draft.
func (e *Engine) finalize(sess *Session) (Reply, error) {
	if !sess.Draft.Complete() {
		return Reply{}, fmt.Errorf("dialog: incomplete draft at finalization for actor %d", sess.ActorID)
	}

	rec := Record{
		OwnerID: sess.ActorID,
		Draft:   sess.Draft,
	}

	if err := e.saver.Save(rec); err != nil {
		log.Printf("dialog: save failed for actor %d: %v", sess.ActorID, err)

		return Reply{}, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	e.store.Delete(sess.ActorID)

	return Reply{Text: summary(sess.Draft)}, nil
}

func (e *Engine) prompt(sess *Session) Reply {
	switch sess.Step {
	case StepName:
		return Reply{Text: "📝 Cadastro de novo cliente\n\nPasso 1/7: digite o nome completo do cliente:"}
	case StepPhone:
		return Reply{Text: "Passo 2/7: digite o telefone do cliente:\n\nExemplo: 11999999999"}
	case StepPackage:
		if sess.Phase == PhaseCustom {
			return Reply{Text: "✏️ Digite o nome do pacote personalizado:\n\nExemplos: Netflix Premium, Combo Streaming"}
		}

		return Reply{Text: "Passo 3/7: escolha o pacote:", Options: e.catalog.Packages()}
	case StepPrice:
		if sess.Phase == PhaseCustom {
			return Reply{Text: "✏️ Digite o valor personalizado:\n\nExemplos: 25.90, 85, 149.99"}
		}

		return Reply{Text: "Passo 4/7: escolha o valor (R$):", Options: e.catalog.Prices()}
	case StepDueDate:
		if sess.Phase == PhaseCustom {
			return Reply{Text: "✏️ Digite a data de vencimento:\n\nFormato: AAAA-MM-DD"}
		}

		return Reply{
			Text:    "Passo 5/7: escolha a data de vencimento:",
			Options: e.catalog.SuggestDueDates(sess.Draft.Package, e.now()),
		}
	case StepServer:
		if sess.Phase == PhaseCustom {
			return Reply{Text: "✏️ Digite o nome do servidor:"}
		}

		return Reply{Text: "Passo 6/7: escolha o servidor:", Options: e.catalog.Servers()}
	case StepNotes:
		return Reply{Text: "Passo 7/7: digite observações sobre o cliente (ou pule):", Options: []string{NotesSkip}}
	case StepDone:
		return Reply{Text: "Salvando cadastro..."}
	default:
		return Reply{}
	}
}

func summary(d Draft) string {
	notes := d.Notes
	if notes == "" {
		notes = "—"
	}

	return fmt.Sprintf(
		"✅ Cliente cadastrado com sucesso!\n\n"+
			"👤 Nome: %s\n"+
			"📱 Telefone: %s\n"+
			"📦 Pacote: %s\n"+
			"💰 Valor: %s\n"+
			"📅 Vencimento: %s\n"+
			"🖥️ Servidor: %s\n"+
			"📝 Observações: %s",
		d.Name, d.Phone, d.Package, d.Price, d.DueDate, d.Server, notes,
	)
}
