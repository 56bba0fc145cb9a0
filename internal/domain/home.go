package domain

import "time"

// Progress is a current/goal pair such as calories eaten against the daily target
type Progress struct {
	Current int
	Goal    int
}

// Percent returns progress as a whole percentage, 0 when there is no goal
func (p Progress) Percent() int {
	if p.Goal == 0 {
		return 0
	}
	return int(float64(p.Current) / float64(p.Goal) * 100)
}

// Remaining returns how much is left until the goal
func (p Progress) Remaining() int {
	return p.Goal - p.Current
}

// Dashboard is what the home screen shows once onboarding is over.
// Nutrition figures are placeholders until meal logging exists.
type Dashboard struct {
	Greeting    string
	Name        string
	Streak      int
	MealsLogged int
	Calories    Progress
	Protein     Progress
	Carbs       Progress
	Fats        Progress
}

// Greeting picks a salutation for the hour of t
func Greeting(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// NewDashboard builds the home screen view of a profile at time now
func NewDashboard(p Profile, now time.Time) Dashboard {
	return Dashboard{
		Greeting: Greeting(now),
		Name:     p.Name,
		Streak:   5,
		Calories: Progress{Goal: 2296},
		Protein:  Progress{Goal: 120},
		Carbs:    Progress{Goal: 258},
		Fats:     Progress{Goal: 77},
	}
}
