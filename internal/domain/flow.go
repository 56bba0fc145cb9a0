package domain

import (
	"fmt"
	"strings"
	"time"
)

// BiometricFields are the sub-steps of the biometrics screen, in order
var BiometricFields = []Field{FieldAge, FieldHeight, FieldWeight}

// Drafts holds values being edited on the active screen.
// Nothing here reaches the profile until the screen is confirmed.
type Drafts struct {
	Name  string
	Email string
	Focus Field

	BiometricStep int
	Biometrics    [3]string

	Goal         Goal
	GoalDuration int

	Food FoodSet
}

// State is one immutable snapshot of an onboarding flow
type State struct {
	SessionID string
	StartedAt time.Time
	Index     int
	Profile   Profile
	Draft     Drafts
}

// NewState starts a flow on the intro screen with an empty profile
func NewState(sessionID string, startedAt time.Time) State {
	return State{
		SessionID: sessionID,
		StartedAt: startedAt,
		Profile:   Profile{FoodPreferences: FoodSet{}},
		Draft:     Drafts{Food: FoodSet{}},
	}
}

// Screen returns the active screen kind
func (s State) Screen() Screen {
	return ScreenAt(s.Index)
}

// Completed reports whether the flow reached the home screen
func (s State) Completed() bool {
	return s.Screen().Terminal()
}

// BiometricField returns the field edited by the current biometric sub-step
func (s State) BiometricField() Field {
	return BiometricFields[s.Draft.BiometricStep]
}

// Apply returns the state that results from a.
// On error the receiver is returned unchanged.
func (s State) Apply(a Action) (State, error) {
	screen := s.Screen()
	next := s.clone()

	switch a := a.(type) {
	case Begin:
		if screen != ScreenIntro {
			return s, notAllowed(a, screen)
		}
		return next.advance(), nil

	case Skip:
		if screen.Terminal() {
			return s, notAllowed(a, screen)
		}
		return next.advance(), nil

	case EditIdentity:
		if screen != ScreenIdentity {
			return s, notAllowed(a, screen)
		}
		switch a.Field {
		case FieldName:
			next.Draft.Name = a.Value
			if strings.TrimSpace(a.Value) != "" {
				next.Draft.Focus = FieldEmail
			}
		case FieldEmail:
			next.Draft.Email = a.Value
		default:
			return s, fmt.Errorf("%w: identity field %q", ErrActionNotAllowed, a.Field)
		}
		return next, nil

	case FocusIdentity:
		if screen != ScreenIdentity {
			return s, notAllowed(a, screen)
		}
		if a.Field != FieldName && a.Field != FieldEmail {
			return s, fmt.Errorf("%w: identity field %q", ErrActionNotAllowed, a.Field)
		}
		next.Draft.Focus = a.Field
		return next, nil

	case SubmitIdentity:
		if screen != ScreenIdentity {
			return s, notAllowed(a, screen)
		}
		if err := ValidateIdentity(next.Draft.Name, next.Draft.Email); err != nil {
			return s, err
		}
		next.Profile.Name = strings.TrimSpace(next.Draft.Name)
		next.Profile.Email = next.Draft.Email
		return next.advance(), nil

	case EnterBiometric:
		if screen != ScreenBiometrics {
			return s, notAllowed(a, screen)
		}
		next.Draft.Biometrics[next.Draft.BiometricStep] = a.Value
		return next, nil

	case ContinueBiometric:
		if screen != ScreenBiometrics {
			return s, notAllowed(a, screen)
		}
		step := next.Draft.BiometricStep
		if strings.TrimSpace(next.Draft.Biometrics[step]) == "" {
			return s, &ValidationError{Fields: map[Field]string{BiometricFields[step]: ReasonRequired}}
		}
		if step < len(BiometricFields)-1 {
			next.Draft.BiometricStep++
			return next, nil
		}
		next.Profile.Age = strings.TrimSpace(next.Draft.Biometrics[0])
		next.Profile.Height = strings.TrimSpace(next.Draft.Biometrics[1])
		next.Profile.Weight = strings.TrimSpace(next.Draft.Biometrics[2])
		return next.advance(), nil

	case SelectGoal:
		if screen != ScreenGoal {
			return s, notAllowed(a, screen)
		}
		if !a.Goal.Valid() {
			return s, fmt.Errorf("%w: %q", ErrUnknownGoal, a.Goal)
		}
		next.Draft.Goal = a.Goal
		return next, nil

	case SetGoalDuration:
		if screen != ScreenGoal {
			return s, notAllowed(a, screen)
		}
		next.Draft.GoalDuration = clampDuration(a.Months)
		return next, nil

	case ConfirmGoal:
		if screen != ScreenGoal {
			return s, notAllowed(a, screen)
		}
		if next.Draft.Goal == "" {
			return s, &ValidationError{Fields: map[Field]string{FieldGoal: ReasonRequired}}
		}
		next.Profile.Goal = next.Draft.Goal
		next.Profile.GoalDuration = next.Draft.GoalDuration
		return next.advance(), nil

	case ToggleFood:
		if screen != ScreenFoodPreferences {
			return s, notAllowed(a, screen)
		}
		if !KnownFood(a.ID) {
			return s, fmt.Errorf("%w: %q", ErrUnknownFood, a.ID)
		}
		next.Draft.Food = next.Draft.Food.Toggle(a.ID)
		return next, nil

	case ConfirmFood:
		if screen != ScreenFoodPreferences {
			return s, notAllowed(a, screen)
		}
		next.Profile.FoodPreferences = next.Draft.Food.Clone()
		return next.advance(), nil

	case ChooseNotifications:
		if screen != ScreenNotifications {
			return s, notAllowed(a, screen)
		}
		next.Profile.NotificationsEnabled = a.Enabled
		return next.advance(), nil
	}

	return s, fmt.Errorf("%w: %T", ErrActionNotAllowed, a)
}

// advance moves to the next screen and seeds its drafts from the profile
func (s State) advance() State {
	s.Index++
	s.Draft = Drafts{Food: FoodSet{}}

	switch s.Screen() {
	case ScreenIdentity:
		s.Draft.Name = s.Profile.Name
		s.Draft.Email = s.Profile.Email
		s.Draft.Focus = FieldName
		if s.Draft.Name != "" {
			s.Draft.Focus = FieldEmail
		}
	case ScreenBiometrics:
		s.Draft.Biometrics = [3]string{s.Profile.Age, s.Profile.Height, s.Profile.Weight}
	case ScreenGoal:
		s.Draft.Goal = s.Profile.Goal
		s.Draft.GoalDuration = s.Profile.GoalDuration
		if s.Draft.GoalDuration == 0 {
			s.Draft.GoalDuration = DefaultGoalDuration
		}
	case ScreenFoodPreferences:
		s.Draft.Food = s.Profile.FoodPreferences.Clone()
	}
	return s
}

func (s State) clone() State {
	s.Profile = s.Profile.Clone()
	s.Draft.Food = s.Draft.Food.Clone()
	return s
}

func clampDuration(months int) int {
	if months < MinGoalDuration {
		return MinGoalDuration
	}
	if months > MaxGoalDuration {
		return MaxGoalDuration
	}
	return months
}

func notAllowed(a Action, screen Screen) error {
	return fmt.Errorf("%w: %T on %s", ErrActionNotAllowed, a, screen)
}
