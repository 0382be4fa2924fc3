// Package session keeps the per-user conversation state: the step an
// in-progress interaction is waiting on plus the partially collected data.
// Everything here is ephemeral and reconstructable; the row store owns all
// durable state.
package session

// Step tags what kind of input the bot expects from a user next.
type Step int

const (
	StepNone Step = iota

	// Trainer registration, strictly linear.
	StepDirection
	StepName
	StepAge
	StepExperience
	StepAbout
	StepPhoto

	// Admin guided credit flow.
	StepCreditTarget
	StepCreditAmount
)

// ExpectsText reports whether free-text input is meaningful at this step.
// Direction and photo are collected through buttons/attachments only.
func (s Step) ExpectsText() bool {
	switch s {
	case StepName, StepAge, StepExperience, StepAbout, StepCreditTarget, StepCreditAmount:
		return true
	}
	return false
}

// TrainerForm is the partially built registration record.
type TrainerForm struct {
	Direction  string
	Name       string
	Age        int
	Experience string
	About      string
	PhotoID    string
}

// Browse is a client's navigation position over a direction's approved
// profiles. IDs are a snapshot; the cursor wraps around cyclically.
type Browse struct {
	Direction string
	IDs       []int64
	Cursor    int
	// CardMessageIDs are the chat message ids of the currently shown
	// card, deleted before the next card is sent.
	CardMessageIDs []int
}

// Credit is the admin's guided balance-credit flow.
type Credit struct {
	Target string
}

// Session is one user's conversation state.
type Session struct {
	Step   Step
	Form   TrainerForm
	Browse *Browse
	Credit Credit
}
