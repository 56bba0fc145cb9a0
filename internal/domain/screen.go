package domain

// Screen is one full-viewport step of the onboarding sequence
type Screen int

const (
	ScreenIntro Screen = iota
	ScreenIdentity
	ScreenBiometrics
	ScreenGoal
	ScreenFoodPreferences
	ScreenNotifications
	ScreenHome
)

// HomeIndex is the index the flow lands on after the last onboarding screen
const HomeIndex = int(ScreenHome)

// ScreenAt maps a screen index to its kind.
// Indices 0-5 are the onboarding screens, anything past them is Home.
// Negative indices are treated as the intro.
func ScreenAt(index int) Screen {
	switch {
	case index <= 0:
		return ScreenIntro
	case index >= HomeIndex:
		return ScreenHome
	default:
		return Screen(index)
	}
}

// Terminal reports whether the screen ends the onboarding sequence
func (s Screen) Terminal() bool {
	return s == ScreenHome
}

func (s Screen) String() string {
	switch s {
	case ScreenIntro:
		return "intro"
	case ScreenIdentity:
		return "identity"
	case ScreenBiometrics:
		return "biometrics"
	case ScreenGoal:
		return "goal"
	case ScreenFoodPreferences:
		return "food_preferences"
	case ScreenNotifications:
		return "notifications"
	case ScreenHome:
		return "home"
	}
	return "unknown"
}
