package tui

import (
	"fmt"
	"strings"

	"habitpet/internal/domain"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if !m.state.Completed() && m.state.Index > 0 {
		b.WriteString(m.progress() + "\n")
	}
	if m.notice != "" {
		b.WriteString(m.styles.Error.Render("⚠ "+m.notice) + "\n")
	}

	switch m.state.Screen() {
	case domain.ScreenIntro:
		b.WriteString(m.viewIntro())
	case domain.ScreenIdentity:
		b.WriteString(m.viewIdentity())
	case domain.ScreenBiometrics:
		b.WriteString(m.viewBiometrics())
	case domain.ScreenGoal:
		b.WriteString(m.viewGoal())
	case domain.ScreenFoodPreferences:
		b.WriteString(m.viewFood())
	case domain.ScreenNotifications:
		b.WriteString(m.viewNotifications())
	case domain.ScreenHome:
		b.WriteString(m.viewHome())
	}

	b.WriteString("\n\n" + m.styles.Muted.Render(m.help()))
	return m.styles.App.Render(b.String())
}

// progress draws one dot per screen between intro and home
func (m Model) progress() string {
	var dots []string
	for i := 1; i < domain.HomeIndex; i++ {
		if i <= m.state.Index {
			dots = append(dots, "●")
		} else {
			dots = append(dots, "○")
		}
	}
	return m.styles.Progress.Render(strings.Join(dots, " "))
}

func (m Model) help() string {
	switch m.state.Screen() {
	case domain.ScreenIntro:
		return "enter start • esc skip • q quit"
	case domain.ScreenIdentity:
		return "tab switch field • enter continue • esc skip"
	case domain.ScreenBiometrics:
		return "enter continue • esc skip"
	case domain.ScreenGoal:
		return "↑/↓ move • space choose • ←/→ months • enter continue • esc skip"
	case domain.ScreenFoodPreferences:
		return "↑/↓ move • space toggle • enter continue • esc skip"
	case domain.ScreenNotifications:
		return "y enable • n maybe later • esc skip"
	}
	return "r start over • q quit"
}

func (m Model) viewIntro() string {
	in := m.l.Intro
	return strings.Join([]string{
		m.styles.Title.Render(in.Icon + " " + in.Title),
		m.styles.Subtitle.Render(in.Subtitle),
		m.styles.Selected.Render("▶ " + in.Start),
		m.styles.Muted.Render(in.Footer),
	}, "\n")
}

func (m Model) viewIdentity() string {
	id := m.l.Identity

	field := func(label string, f domain.Field, value string) string {
		if m.state.Draft.Focus == f {
			return m.styles.Cursor.Render("> "+label+": ") + m.input.View()
		}
		if value == "" {
			return "  " + label + ": " + m.styles.Muted.Render(placeholderFor(id.NamePlaceholder, id.EmailPlaceholder, f))
		}
		return "  " + label + ": " + value
	}

	return strings.Join([]string{
		m.styles.Title.Render(id.Icon + " " + id.Title),
		m.styles.Subtitle.Render(id.Subtitle),
		field(id.NameLabel, domain.FieldName, m.state.Draft.Name),
		field(id.EmailLabel, domain.FieldEmail, m.state.Draft.Email),
		"",
		m.styles.Muted.Render(id.Terms),
	}, "\n")
}

func placeholderFor(name, email string, f domain.Field) string {
	if f == domain.FieldEmail {
		return email
	}
	return name
}

func (m Model) viewBiometrics() string {
	step, _ := m.l.BiometricStep(string(m.state.BiometricField()))
	return strings.Join([]string{
		m.styles.Muted.Render(fmt.Sprintf("%d/%d", m.state.Draft.BiometricStep+1, len(domain.BiometricFields))),
		m.styles.Title.Render(step.Icon + " " + step.Title),
		m.styles.Subtitle.Render(step.Subtitle),
		m.styles.Card.Render(m.input.View()),
	}, "\n")
}

func (m Model) viewGoal() string {
	g := m.l.Goal

	lines := []string{
		m.styles.Title.Render(g.Title),
		m.styles.Subtitle.Render(g.Subtitle),
	}
	for i, goal := range domain.Goals {
		opt, _ := m.l.GoalOption(string(goal))
		line := fmt.Sprintf("%s %s  %s", opt.Avatar, opt.Title, m.styles.Muted.Render(opt.Subtitle))
		lines = append(lines, m.choice(i == m.cursor, m.state.Draft.Goal == goal, line))
	}

	months := fmt.Sprintf(g.Months, m.state.Draft.GoalDuration)
	lines = append(lines,
		"",
		g.DurationLabel,
		fmt.Sprintf("%s  %s  %s", g.MinLabel, m.styles.Selected.Render("◀ "+months+" ▶"), g.MaxLabel),
	)
	return strings.Join(lines, "\n")
}

func (m Model) viewFood() string {
	f := m.l.Food
	ids := foodIDs()
	selected := m.state.Draft.Food

	lines := []string{
		m.styles.Title.Render(f.Title),
		m.styles.Subtitle.Render(f.Subtitle),
		m.styles.Body.Bold(true).Render(f.DietaryTitle),
	}
	for i, id := range ids {
		if i == len(domain.DietaryPreferences) {
			lines = append(lines, "", m.styles.Body.Bold(true).Render(f.CategoriesTitle))
		}
		opt, _ := m.l.FoodOption(id)
		lines = append(lines, m.choice(i == m.cursor, selected.Has(id), opt.Icon+" "+opt.Name))
	}
	lines = append(lines, "", m.styles.Selected.Render(fmt.Sprintf(f.Continue, len(selected))))
	return strings.Join(lines, "\n")
}

func (m Model) viewNotifications() string {
	n := m.l.Notifications

	lines := []string{
		m.styles.Title.Render(n.Icon + " " + n.Title),
		m.styles.Subtitle.Render(n.Body),
	}
	for _, benefit := range n.Benefits {
		lines = append(lines, m.styles.Cursor.Render("✔ ")+benefit)
	}
	lines = append(lines, "", m.styles.Muted.Render(n.Footer))
	return strings.Join(lines, "\n")
}

func (m Model) viewHome() string {
	h := m.l.Home
	d := domain.NewDashboard(m.state.Profile, m.now())

	name := d.Name
	if name == "" {
		name = "friend"
	}

	macros := make([]string, 0, 3)
	for _, macro := range []struct {
		label string
		p     domain.Progress
	}{
		{h.Protein, d.Protein},
		{h.Carbs, d.Carbs},
		{h.Fats, d.Fats},
	} {
		macros = append(macros, fmt.Sprintf(h.Macro, macro.label, macro.p.Current, macro.p.Goal, macro.p.Percent()))
	}

	calories := strings.Join([]string{
		m.styles.Body.Bold(true).Render(h.CaloriesTitle),
		fmt.Sprintf(h.Calories, d.Calories.Current, d.Calories.Goal),
		fmt.Sprintf(h.Percent+" • "+h.Remaining, d.Calories.Percent(), d.Calories.Remaining()),
	}, "\n")

	return strings.Join([]string{
		m.styles.Title.Render(fmt.Sprintf(h.Greeting, d.Greeting, name)),
		m.styles.Subtitle.Render(h.Subtitle),
		m.styles.Card.Render("🐾 " + h.Pet + "\n" + fmt.Sprintf(h.Level, d.MealsLogged)),
		m.styles.Selected.Render(fmt.Sprintf(h.Streak, d.Streak)),
		"",
		calories,
		"",
		m.styles.Body.Bold(true).Render(h.MacrosTitle),
		strings.Join(macros, "\n"),
	}, "\n")
}

// choice renders one row of a list with cursor and selection markers
func (m Model) choice(cursor, selected bool, label string) string {
	mark := "[ ]"
	if selected {
		mark = "[x]"
	}
	row := mark + " " + label
	if selected {
		row = m.styles.Selected.Render(row)
	}
	if cursor {
		return m.styles.Cursor.Render("> ") + row
	}
	return "  " + row
}
