package tui

import (
	"time"

	"habitpet/internal/domain"
	"habitpet/internal/locales"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Model is the terminal onboarding wizard. It drives a domain.State with key presses.
type Model struct {
	state  domain.State
	l      *locales.Locales
	styles Styles
	input  textinput.Model
	now    func() time.Time

	cursor   int
	notice   string
	quitting bool
}

// New creates a wizard on the intro screen
func New(l *locales.Locales, now func() time.Time) Model {
	input := textinput.New()
	input.CharLimit = 64
	input.Width = 40

	m := Model{
		state:  domain.NewState(uuid.NewString(), now()),
		l:      l,
		styles: DefaultStyles(),
		input:  input,
		now:    now,
	}
	m.syncInput()
	return m
}

// State returns the flow state
func (m Model) State() domain.State {
	return m.state
}

// Profile returns the collected profile once the flow reached home
func (m Model) Profile() (domain.Profile, bool) {
	if !m.state.Completed() {
		return domain.Profile{}, false
	}
	return m.state.Profile.Clone(), true
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if !m.state.Completed() {
			return m.apply(domain.Skip{})
		}
	}

	switch m.state.Screen() {
	case domain.ScreenIntro:
		return m.updateIntro(key)
	case domain.ScreenIdentity:
		return m.updateIdentity(key)
	case domain.ScreenBiometrics:
		return m.updateBiometrics(key)
	case domain.ScreenGoal:
		return m.updateGoal(key)
	case domain.ScreenFoodPreferences:
		return m.updateFood(key)
	case domain.ScreenNotifications:
		return m.updateNotifications(key)
	case domain.ScreenHome:
		return m.updateHome(key)
	}
	return m, nil
}

func (m Model) updateIntro(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		return m.apply(domain.Begin{})
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateIdentity(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "tab", "shift+tab", "up", "down":
		other := domain.FieldEmail
		if m.state.Draft.Focus == domain.FieldEmail {
			other = domain.FieldName
		}
		return m.apply(domain.FocusIdentity{Field: other})
	case "enter":
		return m.apply(domain.SubmitIdentity{})
	}

	focus := m.state.Draft.Focus
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)

	next, err := m.state.Apply(domain.EditIdentity{Field: focus, Value: m.input.Value()})
	if err == nil {
		// typing a name must not move the cursor to the email field
		next, err = next.Apply(domain.FocusIdentity{Field: focus})
	}
	if err != nil {
		m.notice = m.l.Notice(m.state, err)
		return m, cmd
	}
	m.state = next
	m.notice = ""
	return m, cmd
}

func (m Model) updateBiometrics(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "enter" {
		return m.apply(domain.ContinueBiometric{})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	model, _ := m.apply(domain.EnterBiometric{Value: m.input.Value()})
	return model, cmd
}

func (m Model) updateGoal(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		m.cursor = wrap(m.cursor-1, len(domain.Goals))
	case "down", "j":
		m.cursor = wrap(m.cursor+1, len(domain.Goals))
	case " ", "space":
		return m.apply(domain.SelectGoal{Goal: domain.Goals[m.cursor]})
	case "left", "-", "h":
		return m.apply(domain.SetGoalDuration{Months: m.state.Draft.GoalDuration - 1})
	case "right", "+", "l":
		return m.apply(domain.SetGoalDuration{Months: m.state.Draft.GoalDuration + 1})
	case "enter":
		return m.apply(domain.ConfirmGoal{})
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateFood(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	ids := foodIDs()

	switch key.String() {
	case "up", "k":
		m.cursor = wrap(m.cursor-1, len(ids))
	case "down", "j":
		m.cursor = wrap(m.cursor+1, len(ids))
	case " ", "space":
		return m.apply(domain.ToggleFood{ID: ids[m.cursor]})
	case "enter":
		return m.apply(domain.ConfirmFood{})
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateNotifications(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "enter":
		return m.apply(domain.ChooseNotifications{Enabled: true})
	case "n":
		return m.apply(domain.ChooseNotifications{Enabled: false})
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateHome(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "r":
		m.state = domain.NewState(uuid.NewString(), m.now())
		m.cursor = 0
		m.notice = ""
		m.syncInput()
	case "q", "enter":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// apply runs an action and resets per-screen UI state when the screen or step changes
func (m Model) apply(action domain.Action) (tea.Model, tea.Cmd) {
	next, err := m.state.Apply(action)
	if err != nil {
		m.notice = m.l.Notice(m.state, err)
		return m, nil
	}

	moved := next.Index != m.state.Index ||
		next.Draft.BiometricStep != m.state.Draft.BiometricStep ||
		next.Draft.Focus != m.state.Draft.Focus
	if next.Index != m.state.Index {
		m.cursor = 0
	}

	m.state = next
	m.notice = ""
	if moved {
		m.syncInput()
	}
	return m, nil
}

// syncInput loads the draft behind the active text field into the input
func (m *Model) syncInput() {
	switch m.state.Screen() {
	case domain.ScreenIdentity:
		if m.state.Draft.Focus == domain.FieldEmail {
			m.input.Placeholder = m.l.Identity.EmailPlaceholder
			m.input.SetValue(m.state.Draft.Email)
		} else {
			m.input.Placeholder = m.l.Identity.NamePlaceholder
			m.input.SetValue(m.state.Draft.Name)
		}
		m.input.Focus()
	case domain.ScreenBiometrics:
		step, _ := m.l.BiometricStep(string(m.state.BiometricField()))
		m.input.Placeholder = step.Placeholder
		m.input.SetValue(m.state.Draft.Biometrics[m.state.Draft.BiometricStep])
		m.input.Focus()
	default:
		m.input.SetValue("")
		m.input.Blur()
	}
}

// foodIDs lists every food toggle in display order
func foodIDs() []string {
	ids := make([]string, 0, len(domain.DietaryPreferences)+len(domain.FoodCategories))
	ids = append(ids, domain.DietaryPreferences...)
	return append(ids, domain.FoodCategories...)
}

func wrap(i, n int) int {
	return (i%n + n) % n
}
