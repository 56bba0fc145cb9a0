package domain

import (
	"sort"
	"time"
)

// Goal identifies the body goal chosen on the goal screen
type Goal string

const (
	GoalSlim    Goal = "slim"
	GoalContent Goal = "content"
	GoalStrong  Goal = "strong"
)

// Goals lists goal options in display order
var Goals = []Goal{GoalSlim, GoalContent, GoalStrong}

// Valid reports whether g is one of the known goals
func (g Goal) Valid() bool {
	for _, known := range Goals {
		if g == known {
			return true
		}
	}
	return false
}

// Goal duration bounds, in months
const (
	MinGoalDuration     = 1
	MaxGoalDuration     = 12
	DefaultGoalDuration = 3
)

// DietaryPreferences and FoodCategories are the two toggle groups of the food screen
var (
	DietaryPreferences = []string{
		"vegetarian", "high-protein", "low-carb", "keto", "mediterranean", "gluten-free",
	}
	FoodCategories = []string{
		"fruits", "veggies", "chicken", "beef", "pork", "fish",
		"dairy", "dessert", "grains", "nuts", "eggs", "pasta",
	}
)

// KnownFood reports whether id belongs to either food group
func KnownFood(id string) bool {
	for _, group := range [][]string{DietaryPreferences, FoodCategories} {
		for _, known := range group {
			if id == known {
				return true
			}
		}
	}
	return false
}

// FoodSet is an unordered set of food preference ids.
// Methods never modify the receiver.
type FoodSet map[string]struct{}

// NewFoodSet builds a set from ids
func NewFoodSet(ids ...string) FoodSet {
	s := make(FoodSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is selected
func (s FoodSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle returns a copy with id added or removed
func (s FoodSet) Toggle(id string) FoodSet {
	out := s.Clone()
	if out.Has(id) {
		delete(out, id)
	} else {
		out[id] = struct{}{}
	}
	return out
}

// Clone returns an independent copy; a nil set clones to an empty one
func (s FoodSet) Clone() FoodSet {
	out := make(FoodSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// IDs returns the selected ids in catalog order, unknown ids sorted at the end
func (s FoodSet) IDs() []string {
	ids := make([]string, 0, len(s))
	seen := make(map[string]bool, len(s))
	for _, group := range [][]string{DietaryPreferences, FoodCategories} {
		for _, id := range group {
			if s.Has(id) {
				ids = append(ids, id)
				seen[id] = true
			}
		}
	}
	var extra []string
	for id := range s {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(ids, extra...)
}

// Profile holds everything the user entered during onboarding
type Profile struct {
	Name                 string
	Email                string
	Age                  string
	Height               string
	Weight               string
	Goal                 Goal
	GoalDuration         int
	FoodPreferences      FoodSet
	NotificationsEnabled bool
}

// Clone returns a deep copy of the profile
func (p Profile) Clone() Profile {
	out := p
	out.FoodPreferences = p.FoodPreferences.Clone()
	return out
}

// ArchivedProfile is a completed profile as stored after onboarding
type ArchivedProfile struct {
	UserID      int64
	SessionID   string
	Profile     Profile
	CompletedAt time.Time
}
