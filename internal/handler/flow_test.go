package handler

import (
	"errors"
	"testing"

	"habitpet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackAction(t *testing.T) {
	tests := []struct {
		name     string
		unique   string
		data     string
		expected domain.Action
		ok       bool
	}{
		{name: "begin", unique: uniqueBegin, expected: domain.Begin{}, ok: true},
		{name: "skip", unique: uniqueSkip, expected: domain.Skip{}, ok: true},
		{name: "submit identity", unique: uniqueSubmitIdentity, expected: domain.SubmitIdentity{}, ok: true},
		{name: "focus email", unique: uniqueFocus, data: "email", expected: domain.FocusIdentity{Field: domain.FieldEmail}, ok: true},
		{name: "focus unknown field", unique: uniqueFocus, data: "age"},
		{name: "biometric next", unique: uniqueBioNext, expected: domain.ContinueBiometric{}, ok: true},
		{name: "goal", unique: uniqueGoal, data: "strong", expected: domain.SelectGoal{Goal: domain.GoalStrong}, ok: true},
		{name: "goal without id", unique: uniqueGoal},
		{name: "duration", unique: uniqueDuration, data: "7", expected: domain.SetGoalDuration{Months: 7}, ok: true},
		{name: "duration not a number", unique: uniqueDuration, data: "seven"},
		{name: "goal confirm", unique: uniqueGoalConfirm, expected: domain.ConfirmGoal{}, ok: true},
		{name: "food", unique: uniqueFood, data: "gluten-free", expected: domain.ToggleFood{ID: "gluten-free"}, ok: true},
		{name: "food without id", unique: uniqueFood},
		{name: "food confirm", unique: uniqueFoodConfirm, expected: domain.ConfirmFood{}, ok: true},
		{name: "notify on", unique: uniqueNotify, data: notifyOn, expected: domain.ChooseNotifications{Enabled: true}, ok: true},
		{name: "notify off", unique: uniqueNotify, data: notifyOff, expected: domain.ChooseNotifications{Enabled: false}, ok: true},
		{name: "notify garbage", unique: uniqueNotify, data: "maybe"},
		{name: "unknown", unique: "view_days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := callbackAction(tt.unique, tt.data)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestTextAction(t *testing.T) {
	identity := stateAt(t, int(domain.ScreenIdentity))
	focused := mustApply(t, identity, domain.FocusIdentity{Field: domain.FieldEmail})

	tests := []struct {
		name     string
		state    domain.State
		expected domain.Action
		ok       bool
	}{
		{name: "identity fills name", state: identity, expected: domain.EditIdentity{Field: domain.FieldName, Value: "hello"}, ok: true},
		{name: "identity fills focused email", state: focused, expected: domain.EditIdentity{Field: domain.FieldEmail, Value: "hello"}, ok: true},
		{name: "biometrics", state: stateAt(t, int(domain.ScreenBiometrics)), expected: domain.EnterBiometric{Value: "hello"}, ok: true},
		{name: "intro", state: stateAt(t, int(domain.ScreenIntro))},
		{name: "goal", state: stateAt(t, int(domain.ScreenGoal))},
		{name: "home", state: stateAt(t, domain.HomeIndex)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := textAction(tt.state, "hello")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestHandler_FullFlow(t *testing.T) {
	h := newTestHandler(t)
	const userID = 42

	require.NoError(t, h.handleStart(message(userID, "/start")))

	steps := []*fakeContext{
		press(userID, uniqueBegin, ""),
		message(userID, "Jane"),
		message(userID, "jane@example.com"),
		press(userID, uniqueSubmitIdentity, ""),
		message(userID, "31"),
		press(userID, uniqueBioNext, ""),
		message(userID, "173 cm"),
		press(userID, uniqueBioNext, ""),
		message(userID, "68 kg"),
		press(userID, uniqueBioNext, ""),
		press(userID, uniqueGoal, "slim"),
		press(userID, uniqueDuration, "6"),
		press(userID, uniqueGoalConfirm, ""),
		press(userID, uniqueFood, "fish"),
		press(userID, uniqueFood, "keto"),
		press(userID, uniqueFoodConfirm, ""),
		press(userID, uniqueNotify, notifyOn),
	}

	var last *fakeContext
	for i, c := range steps {
		if c.callback != nil {
			require.NoError(t, h.handleFlowCallback(c), "step %d", i)
			assert.Equal(t, 1, c.responded, "step %d", i)
		} else {
			require.NoError(t, h.handleText(c), "step %d", i)
		}
		assert.NotContains(t, c.last(), "⚠️", "step %d", i)
		last = c
	}

	state, ok := h.onboarding.Current(userID)
	require.True(t, ok)
	assert.True(t, state.Completed())
	assert.Equal(t, domain.Profile{
		Name:                 "Jane",
		Email:                "jane@example.com",
		Age:                  "31",
		Height:               "173 cm",
		Weight:               "68 kg",
		Goal:                 domain.GoalSlim,
		GoalDuration:         6,
		FoodPreferences:      domain.NewFoodSet("fish", "keto"),
		NotificationsEnabled: true,
	}, state.Profile)
	assert.Contains(t, last.last(), "Good morning, Jane!")
}

func TestHandler_InvalidEmailShowsNotice(t *testing.T) {
	h := newTestHandler(t)
	const userID = 7

	require.NoError(t, h.handleStart(message(userID, "/start")))
	require.NoError(t, h.handleFlowCallback(press(userID, uniqueBegin, "")))
	require.NoError(t, h.handleText(message(userID, "Jane")))
	require.NoError(t, h.handleText(message(userID, "not-an-email")))

	c := press(userID, uniqueSubmitIdentity, "")
	require.NoError(t, h.handleFlowCallback(c))

	assert.Contains(t, c.last(), `"not-an-email" is invalid`)
	assert.NotContains(t, c.last(), h.locales.Identity.NameRequired)

	state, _ := h.onboarding.Current(userID)
	assert.Equal(t, domain.ScreenIdentity, state.Screen())
	assert.Empty(t, state.Profile.Name)
}

func TestHandler_StaleButtonKeepsScreen(t *testing.T) {
	h := newTestHandler(t)
	const userID = 8

	require.NoError(t, h.handleStart(message(userID, "/start")))

	c := press(userID, uniqueGoalConfirm, "")
	require.NoError(t, h.handleFlowCallback(c))

	assert.Contains(t, c.last(), h.locales.Common.NotNow)
	assert.Contains(t, c.last(), h.locales.Intro.Title)
	state, _ := h.onboarding.Current(userID)
	assert.Equal(t, domain.ScreenIntro, state.Screen())
}

func TestHandler_TextOnButtonScreen(t *testing.T) {
	h := newTestHandler(t)
	const userID = 9

	require.NoError(t, h.handleStart(message(userID, "/start")))

	c := message(userID, "hello?")
	require.NoError(t, h.handleText(c))

	assert.Contains(t, c.last(), h.locales.Common.UseButtons)
}

func TestHandler_TextWithoutSessionStartsFlow(t *testing.T) {
	h := newTestHandler(t)

	c := message(10, "hi")
	require.NoError(t, h.handleText(c))

	assert.Contains(t, c.last(), h.locales.Intro.Title)
	state, ok := h.onboarding.Current(10)
	require.True(t, ok)
	assert.Equal(t, domain.ScreenIntro, state.Screen())
}

func TestHandler_CommandTextIgnored(t *testing.T) {
	h := newTestHandler(t)

	c := message(11, "/unknown")
	require.NoError(t, h.handleText(c))

	assert.Empty(t, c.sent)
	_, ok := h.onboarding.Current(11)
	assert.False(t, ok)
}

func TestHandler_CallbackWithoutSessionStartsFlow(t *testing.T) {
	h := newTestHandler(t)

	c := press(12, uniqueSkip, "")
	require.NoError(t, h.handleFlowCallback(c))

	assert.Contains(t, c.last(), h.locales.Intro.Title)
	state, ok := h.onboarding.Current(12)
	require.True(t, ok)
	assert.Equal(t, 0, state.Index)
}

func TestHandler_FallbackCallback(t *testing.T) {
	h := newTestHandler(t)
	const userID = 13

	h.onboarding.Start(userID)
	for i := 0; i < int(domain.ScreenGoal); i++ {
		_, err := h.onboarding.Apply(userID, domain.Skip{})
		require.NoError(t, err)
	}

	c := press(userID, "", "\fgoal|strong")
	require.NoError(t, h.handleCallback(c))

	state, _ := h.onboarding.Current(userID)
	assert.Equal(t, domain.GoalStrong, state.Draft.Goal)
	require.NotEmpty(t, c.markups)
	btn, found := findButton(c.markups[len(c.markups)-1], uniqueGoal, "strong")
	require.True(t, found)
	assert.Equal(t, "✅ 💪 Strong", btn.Text)

	unknown := press(userID, "", "\fview_days")
	require.NoError(t, h.handleCallback(unknown))
	assert.Equal(t, 1, unknown.responded)
	assert.Empty(t, unknown.edited)
}

func TestHandler_EditNotModified(t *testing.T) {
	h := newTestHandler(t)
	h.onboarding.Start(14)

	c := press(14, uniqueFood, "eggs")
	c.editErr = errors.New("telegram: Bad Request: message is not modified (400)")
	require.NoError(t, h.handleFlowCallback(c))

	assert.Empty(t, c.sent)
	assert.Equal(t, 1, c.responded)
}

func TestHandler_EditFailureSendsNew(t *testing.T) {
	h := newTestHandler(t)
	h.onboarding.Start(15)

	c := press(15, uniqueBegin, "")
	c.editErr = errors.New("telegram: Bad Request: message to edit not found (400)")
	require.NoError(t, h.handleFlowCallback(c))

	require.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0], h.locales.Identity.Title)
	assert.Equal(t, 1, c.responded)
}

func TestHandler_Home(t *testing.T) {
	h := newTestHandler(t)

	c := message(16, "/home")
	require.NoError(t, h.handleHome(c))
	assert.Equal(t, []string{h.locales.Home.NoProfile}, c.sent)

	h.onboarding.Start(16)
	for i := 0; i < domain.HomeIndex; i++ {
		_, err := h.onboarding.Apply(16, domain.Skip{})
		require.NoError(t, err)
	}

	c = message(16, "/home")
	require.NoError(t, h.handleHome(c))
	require.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0], "Good morning, friend!")
}

func TestHandler_Reset(t *testing.T) {
	h := newTestHandler(t)
	h.onboarding.Start(17)

	c := message(17, "/reset")
	require.NoError(t, h.handleReset(c))

	assert.Equal(t, []string{h.locales.Home.Reset}, c.sent)
	_, ok := h.onboarding.Current(17)
	assert.False(t, ok)
}

func TestHandler_RestartButton(t *testing.T) {
	h := newTestHandler(t)
	first := h.onboarding.Start(18)

	c := press(18, uniqueRestart, "")
	require.NoError(t, h.handleCallback(c))

	state, ok := h.onboarding.Current(18)
	require.True(t, ok)
	assert.NotEqual(t, first.SessionID, state.SessionID)
	assert.Contains(t, c.last(), h.locales.Intro.Title)
}
