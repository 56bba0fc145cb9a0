package main

import (
	"fmt"
	"os"
	"time"

	"habitpet/internal/locales"
	"habitpet/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	l, err := locales.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load locales: %v\n", err)
		os.Exit(1)
	}

	final, err := tea.NewProgram(tui.New(l, time.Now), tea.WithAltScreen()).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Wizard failed: %v\n", err)
		os.Exit(1)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return
	}
	profile, ok := m.Profile()
	if !ok {
		fmt.Fprintln(os.Stderr, "Onboarding not finished")
		os.Exit(1)
	}

	out, err := tui.MarshalProfile(profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
