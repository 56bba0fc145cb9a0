package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"habitpet/internal/domain"
	"habitpet/internal/locales"

	tele "gopkg.in/telebot.v3"
)

// Callback uniques of the onboarding keyboards
const (
	uniqueBegin          = "begin"
	uniqueSkip           = "skip"
	uniqueSubmitIdentity = "identity_submit"
	uniqueFocus          = "identity_focus"
	uniqueBioNext        = "bio_next"
	uniqueGoal           = "goal"
	uniqueDuration       = "goal_duration"
	uniqueGoalConfirm    = "goal_confirm"
	uniqueFood           = "food"
	uniqueFoodConfirm    = "food_confirm"
	uniqueNotify         = "notify"
	uniqueRestart        = "restart"
)

const (
	notifyOn  = "on"
	notifyOff = "off"
)

// Renderer turns a flow state into a Telegram message
type Renderer struct {
	l *locales.Locales
}

// NewRenderer creates a renderer for the given copy
func NewRenderer(l *locales.Locales) *Renderer {
	return &Renderer{l: l}
}

// Screen renders the active screen of state
func (r *Renderer) Screen(state domain.State, now time.Time) (string, *tele.ReplyMarkup) {
	switch state.Screen() {
	case domain.ScreenIntro:
		return r.intro()
	case domain.ScreenIdentity:
		return r.identity(state)
	case domain.ScreenBiometrics:
		return r.biometrics(state)
	case domain.ScreenGoal:
		return r.goal(state)
	case domain.ScreenFoodPreferences:
		return r.food(state)
	case domain.ScreenNotifications:
		return r.notifications()
	case domain.ScreenHome:
		return r.Home(state.Profile, now)
	}
	return r.l.Common.Error, nil
}

// Home renders the dashboard for a profile
func (r *Renderer) Home(p domain.Profile, now time.Time) (string, *tele.ReplyMarkup) {
	h := r.l.Home
	d := domain.NewDashboard(p, now)

	name := d.Name
	if name == "" {
		name = "friend"
	}

	var b strings.Builder
	fmt.Fprintf(&b, h.Greeting+"\n", d.Greeting, name)
	b.WriteString(h.Subtitle + "\n\n")
	b.WriteString("🐾 " + h.Pet + "\n")
	fmt.Fprintf(&b, h.Level+"\n", d.MealsLogged)
	fmt.Fprintf(&b, h.Streak+"\n\n", d.Streak)

	b.WriteString(h.CaloriesTitle + "\n")
	fmt.Fprintf(&b, h.Calories+"\n", d.Calories.Current, d.Calories.Goal)
	fmt.Fprintf(&b, h.Percent+" • "+h.Remaining+"\n\n", d.Calories.Percent(), d.Calories.Remaining())

	b.WriteString(h.MacrosTitle + "\n")
	for _, m := range []struct {
		label string
		p     domain.Progress
	}{
		{h.Protein, d.Protein},
		{h.Carbs, d.Carbs},
		{h.Fats, d.Fats},
	} {
		fmt.Fprintf(&b, h.Macro+"\n", m.label, m.p.Current, m.p.Goal, m.p.Percent())
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data(h.Restart, uniqueRestart)))
	return b.String(), markup
}

// Notice returns the inline message for a failed action
func (r *Renderer) Notice(state domain.State, err error) string {
	return r.l.Notice(state, err)
}

func (r *Renderer) intro() (string, *tele.ReplyMarkup) {
	in := r.l.Intro
	text := fmt.Sprintf("%s %s\n\n%s\n\n%s", in.Icon, in.Title, in.Subtitle, in.Footer)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(in.Start, uniqueBegin)),
		markup.Row(r.skipButton(markup)),
	)
	return text, markup
}

func (r *Renderer) identity(state domain.State) (string, *tele.ReplyMarkup) {
	id := r.l.Identity

	name := state.Draft.Name
	if name == "" {
		name = "(" + id.NamePlaceholder + ")"
	}
	email := state.Draft.Email
	if email == "" {
		email = "(" + id.EmailPlaceholder + ")"
	}

	ask := id.AskName
	if state.Draft.Focus == domain.FieldEmail {
		ask = id.AskEmail
	}

	text := fmt.Sprintf("%s %s\n%s\n\n%s: %s\n%s: %s\n\n%s\n\n%s",
		id.Icon, id.Title, id.Subtitle,
		id.NameLabel, name,
		id.EmailLabel, email,
		ask, id.Terms,
	)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(r.l.Common.Continue, uniqueSubmitIdentity)),
		markup.Row(
			markup.Data(id.EditName, uniqueFocus, string(domain.FieldName)),
			markup.Data(id.EditEmail, uniqueFocus, string(domain.FieldEmail)),
		),
		markup.Row(r.skipButton(markup)),
	)
	return text, markup
}

func (r *Renderer) biometrics(state domain.State) (string, *tele.ReplyMarkup) {
	bio := r.l.Biometrics
	stepIndex := state.Draft.BiometricStep
	step, _ := r.l.BiometricStep(string(state.BiometricField()))
	value := state.Draft.Biometrics[stepIndex]

	answer := "e.g. " + step.Placeholder
	if strings.TrimSpace(value) != "" {
		answer = "➡️ " + value
	}

	text := fmt.Sprintf("%s %s\n%s\n\n%d/%d\n%s",
		step.Icon, step.Title, step.Subtitle,
		stepIndex+1, len(domain.BiometricFields), answer,
	)

	markup := &tele.ReplyMarkup{}
	var rows []tele.Row
	if strings.TrimSpace(value) != "" {
		label := bio.Continue
		if stepIndex == len(domain.BiometricFields)-1 {
			label = bio.Next
		}
		rows = append(rows, markup.Row(markup.Data(label, uniqueBioNext)))
	}
	rows = append(rows, markup.Row(r.skipButton(markup)))
	markup.Inline(rows...)
	return text, markup
}

func (r *Renderer) goal(state domain.State) (string, *tele.ReplyMarkup) {
	g := r.l.Goal

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", g.Title, g.Subtitle)
	for _, opt := range g.Options {
		fmt.Fprintf(&b, "%s %s: %s\n%s\n\n", opt.Avatar, opt.Title, opt.Subtitle, opt.Description)
	}
	fmt.Fprintf(&b, "%s "+g.Months+"\n(%s – %s)", g.DurationLabel, state.Draft.GoalDuration, g.MinLabel, g.MaxLabel)

	markup := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, opt := range g.Options {
		label := opt.Avatar + " " + opt.Title
		if string(state.Draft.Goal) == opt.ID {
			label = "✅ " + label
		}
		rows = append(rows, markup.Row(markup.Data(label, uniqueGoal, opt.ID)))
	}

	months := state.Draft.GoalDuration
	var durationRow tele.Row
	if months > domain.MinGoalDuration {
		durationRow = append(durationRow, markup.Data("➖", uniqueDuration, strconv.Itoa(months-1)))
	}
	durationRow = append(durationRow, markup.Data(fmt.Sprintf(g.Months, months), uniqueDuration, strconv.Itoa(months)))
	if months < domain.MaxGoalDuration {
		durationRow = append(durationRow, markup.Data("➕", uniqueDuration, strconv.Itoa(months+1)))
	}
	rows = append(rows, durationRow)

	if state.Draft.Goal != "" {
		rows = append(rows, markup.Row(markup.Data(r.l.Common.Continue, uniqueGoalConfirm)))
	}
	rows = append(rows, markup.Row(r.skipButton(markup)))

	markup.Inline(rows...)
	return b.String(), markup
}

func (r *Renderer) food(state domain.State) (string, *tele.ReplyMarkup) {
	f := r.l.Food
	selected := state.Draft.Food

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", f.Title, f.Subtitle)
	if len(selected) > 0 {
		names := make([]string, 0, len(selected))
		for _, id := range selected.IDs() {
			if opt, ok := r.l.FoodOption(id); ok {
				names = append(names, opt.Icon+" "+opt.Name)
			}
		}
		b.WriteString("\n" + strings.Join(names, ", ") + "\n")
	}
	fmt.Fprintf(&b, "\n⬇️ %s, then %s", f.DietaryTitle, f.CategoriesTitle)

	markup := &tele.ReplyMarkup{}
	var rows []tele.Row
	rows = append(rows, r.foodRows(markup, f.Dietary, selected, 2)...)
	rows = append(rows, r.foodRows(markup, f.Categories, selected, 3)...)
	rows = append(rows,
		markup.Row(markup.Data(fmt.Sprintf(f.Continue, len(selected)), uniqueFoodConfirm)),
		markup.Row(r.skipButton(markup)),
	)
	markup.Inline(rows...)
	return b.String(), markup
}

func (r *Renderer) foodRows(markup *tele.ReplyMarkup, options []locales.FoodOption, selected domain.FoodSet, perRow int) []tele.Row {
	var rows []tele.Row
	var row tele.Row
	for _, opt := range options {
		label := opt.Icon + " " + opt.Name
		if selected.Has(opt.ID) {
			label = "✅ " + opt.Name
		}
		row = append(row, markup.Data(label, uniqueFood, opt.ID))
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

func (r *Renderer) notifications() (string, *tele.ReplyMarkup) {
	n := r.l.Notifications

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n%s\n\n", n.Icon, n.Title, n.Body)
	for _, benefit := range n.Benefits {
		b.WriteString("✔️ " + benefit + "\n")
	}
	b.WriteString("\n" + n.Footer)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(n.Enable, uniqueNotify, notifyOn)),
		markup.Row(markup.Data(n.Decline, uniqueNotify, notifyOff)),
		markup.Row(r.skipButton(markup)),
	)
	return b.String(), markup
}

func (r *Renderer) skipButton(markup *tele.ReplyMarkup) tele.Btn {
	return markup.Data(r.l.Common.Skip, uniqueSkip)
}
