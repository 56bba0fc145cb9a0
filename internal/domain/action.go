package domain

// Action is a user intent applied to the flow state.
// The set of actions is closed; State.Apply matches every variant.
type Action interface {
	isAction()
}

// Begin leaves the intro screen
type Begin struct{}

// Skip advances past the current screen without writing its fields
type Skip struct{}

// EditIdentity sets the draft value of one identity field
type EditIdentity struct {
	Field Field
	Value string
}

// FocusIdentity selects which identity field receives text input
type FocusIdentity struct {
	Field Field
}

// SubmitIdentity validates and stores name and email
type SubmitIdentity struct{}

// EnterBiometric sets the draft for the current biometric sub-step
type EnterBiometric struct {
	Value string
}

// ContinueBiometric confirms the current biometric sub-step
type ContinueBiometric struct{}

// SelectGoal picks one goal
type SelectGoal struct {
	Goal Goal
}

// SetGoalDuration moves the duration slider
type SetGoalDuration struct {
	Months int
}

// ConfirmGoal stores the selected goal and duration
type ConfirmGoal struct{}

// ToggleFood flips one food preference
type ToggleFood struct {
	ID string
}

// ConfirmFood stores the current food selection
type ConfirmFood struct{}

// ChooseNotifications records the notification consent
type ChooseNotifications struct {
	Enabled bool
}

func (Begin) isAction()               {}
func (Skip) isAction()                {}
func (EditIdentity) isAction()        {}
func (FocusIdentity) isAction()       {}
func (SubmitIdentity) isAction()      {}
func (EnterBiometric) isAction()      {}
func (ContinueBiometric) isAction()   {}
func (SelectGoal) isAction()          {}
func (SetGoalDuration) isAction()     {}
func (ConfirmGoal) isAction()         {}
func (ToggleFood) isAction()          {}
func (ConfirmFood) isAction()         {}
func (ChooseNotifications) isAction() {}
