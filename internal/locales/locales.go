package locales

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales.yaml
var localesYAML []byte

// Locales holds every user-facing string of the onboarding flow
type Locales struct {
	Common        Common        `yaml:"common"`
	Auth          Auth          `yaml:"auth"`
	Intro         Intro         `yaml:"intro"`
	Identity      Identity      `yaml:"identity"`
	Biometrics    Biometrics    `yaml:"biometrics"`
	Goal          GoalScreen    `yaml:"goal"`
	Food          FoodScreen    `yaml:"food"`
	Notifications Notifications `yaml:"notifications"`
	Home          Home          `yaml:"home"`
}

type Common struct {
	Continue   string `yaml:"continue"`
	Skip       string `yaml:"skip"`
	Error      string `yaml:"error"`
	NotNow     string `yaml:"not_now"`
	UseButtons string `yaml:"use_buttons"`
}

type Auth struct {
	Prompt  string `yaml:"prompt"`
	Granted string `yaml:"granted"`
	Denied  string `yaml:"denied"`
}

type Intro struct {
	Icon     string `yaml:"icon"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Start    string `yaml:"start"`
	Footer   string `yaml:"footer"`
}

type Identity struct {
	Icon             string `yaml:"icon"`
	Title            string `yaml:"title"`
	Subtitle         string `yaml:"subtitle"`
	NameLabel        string `yaml:"name_label"`
	EmailLabel       string `yaml:"email_label"`
	NamePlaceholder  string `yaml:"name_placeholder"`
	EmailPlaceholder string `yaml:"email_placeholder"`
	AskName          string `yaml:"ask_name"`
	AskEmail         string `yaml:"ask_email"`
	EditName         string `yaml:"edit_name"`
	EditEmail        string `yaml:"edit_email"`
	NameRequired     string `yaml:"name_required"`
	EmailInvalid     string `yaml:"email_invalid"`
	Terms            string `yaml:"terms"`
}

// BiometricStep describes one sub-step of the biometrics screen
type BiometricStep struct {
	Field       string `yaml:"field"`
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Placeholder string `yaml:"placeholder"`
}

type Biometrics struct {
	Continue string          `yaml:"continue"`
	Next     string          `yaml:"next"`
	Required string          `yaml:"required"`
	Steps    []BiometricStep `yaml:"steps"`
}

// GoalOption is the display copy of one goal
type GoalOption struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Avatar      string `yaml:"avatar"`
	Description string `yaml:"description"`
}

type GoalScreen struct {
	Title         string       `yaml:"title"`
	Subtitle      string       `yaml:"subtitle"`
	DurationLabel string       `yaml:"duration_label"`
	Months        string       `yaml:"months"`
	MinLabel      string       `yaml:"min_label"`
	MaxLabel      string       `yaml:"max_label"`
	Required      string       `yaml:"required"`
	Options       []GoalOption `yaml:"options"`
}

// FoodOption is the display copy of one food toggle
type FoodOption struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type FoodScreen struct {
	Title           string       `yaml:"title"`
	Subtitle        string       `yaml:"subtitle"`
	DietaryTitle    string       `yaml:"dietary_title"`
	CategoriesTitle string       `yaml:"categories_title"`
	Continue        string       `yaml:"continue"`
	Dietary         []FoodOption `yaml:"dietary"`
	Categories      []FoodOption `yaml:"categories"`
}

type Notifications struct {
	Icon     string   `yaml:"icon"`
	Title    string   `yaml:"title"`
	Body     string   `yaml:"body"`
	Benefits []string `yaml:"benefits"`
	Enable   string   `yaml:"enable"`
	Decline  string   `yaml:"decline"`
	Footer   string   `yaml:"footer"`
}

type Home struct {
	Greeting      string `yaml:"greeting"`
	Subtitle      string `yaml:"subtitle"`
	Pet           string `yaml:"pet"`
	Level         string `yaml:"level"`
	Streak        string `yaml:"streak"`
	CaloriesTitle string `yaml:"calories_title"`
	Calories      string `yaml:"calories"`
	Percent       string `yaml:"percent"`
	Remaining     string `yaml:"remaining"`
	MacrosTitle   string `yaml:"macros_title"`
	Protein       string `yaml:"protein"`
	Carbs         string `yaml:"carbs"`
	Fats          string `yaml:"fats"`
	Macro         string `yaml:"macro"`
	NoProfile     string `yaml:"no_profile"`
	Restart       string `yaml:"restart"`
	Reset         string `yaml:"reset"`
}

var (
	loaded  *Locales
	loadErr error
	once    sync.Once
)

// Parse decodes a locales document
func Parse(data []byte) (*Locales, error) {
	var l Locales
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse locales: %w", err)
	}
	if len(l.Biometrics.Steps) != 3 {
		return nil, fmt.Errorf("locales must define 3 biometric steps, got %d", len(l.Biometrics.Steps))
	}
	return &l, nil
}

// Load returns the embedded locales, parsed once
func Load() (*Locales, error) {
	once.Do(func() {
		loaded, loadErr = Parse(localesYAML)
	})
	return loaded, loadErr
}

// MustLoad is Load for program start-up, where a broken catalog is fatal
func MustLoad() *Locales {
	l, err := Load()
	if err != nil {
		panic(err)
	}
	return l
}

// GoalOption returns the copy for a goal id
func (l *Locales) GoalOption(id string) (GoalOption, bool) {
	for _, opt := range l.Goal.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return GoalOption{}, false
}

// FoodOption returns the copy for a food id from either group
func (l *Locales) FoodOption(id string) (FoodOption, bool) {
	for _, group := range [][]FoodOption{l.Food.Dietary, l.Food.Categories} {
		for _, opt := range group {
			if opt.ID == id {
				return opt, true
			}
		}
	}
	return FoodOption{}, false
}

// BiometricStep returns the copy for a biometric field
func (l *Locales) BiometricStep(field string) (BiometricStep, bool) {
	for _, step := range l.Biometrics.Steps {
		if step.Field == field {
			return step, true
		}
	}
	return BiometricStep{}, false
}
