package telegram

import (
	"strconv"
	"strings"
	"sync"
)

// WizardState is one step of the linear registration flow:
// name -> channel id -> thread id.
type WizardState int

const (
	StateIdle WizardState = iota
	StateName
	StateChannel
	StateThread
)

// Registration holds the fields collected by the wizard. ThreadID is zero
// when the webhook targets the top-level chat.
type Registration struct {
	Name      string
	ChannelID int64
	ThreadID  int64
}

// StepResult is the side effect of one wizard transition: the reply to
// send, and the completed registration once Done is true.
type StepResult struct {
	Reply        string
	Done         bool
	Registration Registration
}

// transition consumes one user input and returns the next state plus its
// side effect. Invalid input keeps the current state and re-prompts.
func transition(state WizardState, reg Registration, input string) (WizardState, Registration, StepResult) {
	input = strings.TrimSpace(input)

	switch state {
	case StateName:
		if input == "" {
			return StateName, reg, StepResult{Reply: msgNameEmpty}
		}
		if len(input) > 100 {
			return StateName, reg, StepResult{Reply: msgNameTooLong}
		}
		reg.Name = input
		return StateChannel, reg, StepResult{Reply: msgAskChannel}

	case StateChannel:
		channelID, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			return StateChannel, reg, StepResult{Reply: msgChannelInvalid}
		}
		reg.ChannelID = channelID
		return StateThread, reg, StepResult{Reply: msgAskThread}

	case StateThread:
		if input != "None" {
			threadID, err := strconv.ParseInt(input, 10, 64)
			if err != nil {
				return StateThread, reg, StepResult{Reply: msgThreadInvalid}
			}
			reg.ThreadID = threadID
		}
		return StateIdle, reg, StepResult{Done: true, Registration: reg}
	}

	return StateIdle, reg, StepResult{}
}

// Wizard tracks per-user registration sessions. Sessions are in-memory
// only; a restart simply drops half-finished registrations.
type Wizard struct {
	mu       sync.Mutex
	sessions map[int64]*session
}

type session struct {
	state WizardState
	reg   Registration
}

// NewWizard creates an empty session tracker.
func NewWizard() *Wizard {
	return &Wizard{sessions: make(map[int64]*session)}
}

// Start opens a fresh session for the user and returns the first prompt.
// An existing half-finished session is discarded.
func (w *Wizard) Start(userID int64) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sessions[userID] = &session{state: StateName}
	return msgAskName
}

// Active reports whether the user has a session in progress.
func (w *Wizard) Active(userID int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.sessions[userID]
	return ok
}

// Cancel drops the user's session, if any.
func (w *Wizard) Cancel(userID int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.sessions, userID)
}

// Advance feeds one input to the user's session. The second return value
// is false when no session is active.
func (w *Wizard) Advance(userID int64, input string) (StepResult, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sess, ok := w.sessions[userID]
	if !ok {
		return StepResult{}, false
	}

	next, reg, result := transition(sess.state, sess.reg, input)
	if result.Done || next == StateIdle {
		delete(w.sessions, userID)
	} else {
		sess.state = next
		sess.reg = reg
	}
	return result, true
}
