package handler

import (
	"time"

	"habitpet/internal/locales"
	"habitpet/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	onboarding *service.OnboardingService
	locales    *locales.Locales
	render     *Renderer
	logger     *zap.Logger
	now        func() time.Time
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	onboarding *service.OnboardingService,
	l *locales.Locales,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		onboarding: onboarding,
		locales:    l,
		render:     NewRenderer(l),
		logger:     logger,
		now:        time.Now,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/home", h.handleHome)
	h.bot.Handle("/reset", h.handleReset)

	// Text input for identity and biometrics
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	for _, unique := range flowUniques {
		h.bot.Handle(&tele.Btn{Unique: unique}, h.handleFlowCallback)
	}
	h.bot.Handle(&tele.Btn{Unique: uniqueRestart}, h.handleStart)

	// Fallback for callbacks whose unique did not come through
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// flowUniques are the buttons that translate into flow actions
var flowUniques = []string{
	uniqueBegin,
	uniqueSkip,
	uniqueSubmitIdentity,
	uniqueFocus,
	uniqueBioNext,
	uniqueGoal,
	uniqueDuration,
	uniqueGoalConfirm,
	uniqueFood,
	uniqueFoodConfirm,
	uniqueNotify,
}
