package tui

import (
	"fmt"

	"habitpet/internal/domain"

	"gopkg.in/yaml.v3"
)

type profileDocument struct {
	Name                 string   `yaml:"name,omitempty"`
	Email                string   `yaml:"email,omitempty"`
	Age                  string   `yaml:"age,omitempty"`
	Height               string   `yaml:"height,omitempty"`
	Weight               string   `yaml:"weight,omitempty"`
	Goal                 string   `yaml:"goal,omitempty"`
	GoalDuration         int      `yaml:"goal_duration_months,omitempty"`
	FoodPreferences      []string `yaml:"food_preferences,omitempty"`
	NotificationsEnabled bool     `yaml:"notifications_enabled"`
}

// MarshalProfile renders a completed profile as YAML
func MarshalProfile(p domain.Profile) ([]byte, error) {
	doc := profileDocument{
		Name:                 p.Name,
		Email:                p.Email,
		Age:                  p.Age,
		Height:               p.Height,
		Weight:               p.Weight,
		Goal:                 string(p.Goal),
		GoalDuration:         p.GoalDuration,
		FoodPreferences:      p.FoodPreferences.IDs(),
		NotificationsEnabled: p.NotificationsEnabled,
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	return out, nil
}
