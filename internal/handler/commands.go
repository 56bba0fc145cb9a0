package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart begins a fresh onboarding flow, dropping any flow in progress
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started onboarding",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	state := h.onboarding.Start(userID)
	return h.show(c, state, "")
}

// handleHome shows the dashboard of the finished flow or the archived profile
func (h *Handler) handleHome(c tele.Context) error {
	userID := c.Sender().ID

	if state, ok := h.onboarding.Current(userID); ok && state.Completed() {
		text, markup := h.render.Home(state.Profile, h.now())
		return c.Send(text, markup)
	}

	archived, err := h.onboarding.ArchivedProfile(userID)
	if err != nil {
		h.logger.Error("Failed to load archived profile", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(h.locales.Common.Error)
	}
	if archived == nil {
		return c.Send(h.locales.Home.NoProfile)
	}

	text, markup := h.render.Home(archived.Profile, h.now())
	return c.Send(text, markup)
}

// handleReset drops the flow in progress
func (h *Handler) handleReset(c tele.Context) error {
	userID := c.Sender().ID

	if h.onboarding.Reset(userID) {
		h.logger.Info("Onboarding reset", zap.Int64("user_id", userID))
	}
	return c.Send(h.locales.Home.Reset)
}
