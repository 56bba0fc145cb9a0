package handler

import (
	"errors"
	"strconv"
	"strings"

	"habitpet/internal/domain"
	"habitpet/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText feeds typed input into the flow
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state, ok := h.onboarding.Current(userID)
	if !ok {
		return h.show(c, h.onboarding.Start(userID), "")
	}

	action, ok := textAction(state, text)
	if !ok {
		return h.show(c, state, h.locales.Common.UseButtons)
	}
	return h.apply(c, action)
}

// handleFlowCallback handles the buttons registered by unique
func (h *Handler) handleFlowCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	action, ok := callbackAction(callback.Unique, cleanCallbackData(callback.Data))
	if !ok {
		h.logger.Warn("Malformed flow callback",
			zap.String("unique", callback.Unique),
			zap.String("data", callback.Data),
			zap.Int64("user_id", c.Sender().ID),
		)
		return c.Respond()
	}
	return h.apply(c, action)
}

// apply runs an action and shows the resulting screen, prefixed by a notice on failure
func (h *Handler) apply(c tele.Context, action domain.Action) error {
	userID := c.Sender().ID

	state, err := h.onboarding.Apply(userID, action)
	if errors.Is(err, service.ErrNoSession) {
		return h.show(c, h.onboarding.Start(userID), "")
	}

	var notice string
	if err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			h.logger.Warn("Action rejected",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.Stringer("screen", state.Screen()),
			)
		}
		notice = h.render.Notice(state, err)
	}
	return h.show(c, state, notice)
}

// show edits the message behind a callback, or sends a new one
func (h *Handler) show(c tele.Context, state domain.State, notice string) error {
	text, markup := h.render.Screen(state, h.now())
	if notice != "" {
		text = "⚠️ " + notice + "\n\n" + text
	}

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil // Message was already modified, just acknowledged
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// textAction maps typed input to the action of the active screen
func textAction(state domain.State, text string) (domain.Action, bool) {
	switch state.Screen() {
	case domain.ScreenIdentity:
		field := state.Draft.Focus
		if field == "" {
			field = domain.FieldName
		}
		return domain.EditIdentity{Field: field, Value: text}, true
	case domain.ScreenBiometrics:
		return domain.EnterBiometric{Value: text}, true
	}
	return nil, false
}

// callbackAction maps a button press to a flow action
func callbackAction(unique, data string) (domain.Action, bool) {
	switch unique {
	case uniqueBegin:
		return domain.Begin{}, true
	case uniqueSkip:
		return domain.Skip{}, true
	case uniqueSubmitIdentity:
		return domain.SubmitIdentity{}, true
	case uniqueFocus:
		switch field := domain.Field(data); field {
		case domain.FieldName, domain.FieldEmail:
			return domain.FocusIdentity{Field: field}, true
		}
	case uniqueBioNext:
		return domain.ContinueBiometric{}, true
	case uniqueGoal:
		if data != "" {
			return domain.SelectGoal{Goal: domain.Goal(data)}, true
		}
	case uniqueDuration:
		if months, err := strconv.Atoi(data); err == nil {
			return domain.SetGoalDuration{Months: months}, true
		}
	case uniqueGoalConfirm:
		return domain.ConfirmGoal{}, true
	case uniqueFood:
		if data != "" {
			return domain.ToggleFood{ID: data}, true
		}
	case uniqueFoodConfirm:
		return domain.ConfirmFood{}, true
	case uniqueNotify:
		switch data {
		case notifyOn:
			return domain.ChooseNotifications{Enabled: true}, true
		case notifyOff:
			return domain.ChooseNotifications{Enabled: false}, true
		}
	}
	return nil, false
}
