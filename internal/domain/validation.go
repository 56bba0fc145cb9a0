package domain

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// Field names a profile input that can fail validation
type Field string

const (
	FieldName   Field = "name"
	FieldEmail  Field = "email"
	FieldAge    Field = "age"
	FieldHeight Field = "height"
	FieldWeight Field = "weight"
	FieldGoal   Field = "goal"
)

var (
	// ErrActionNotAllowed is returned when an action does not belong to the active screen
	ErrActionNotAllowed = errors.New("action not allowed on current screen")
	// ErrUnknownGoal is returned for a goal id outside the catalog
	ErrUnknownGoal = errors.New("unknown goal")
	// ErrUnknownFood is returned for a food id outside both food groups
	ErrUnknownFood = errors.New("unknown food preference")
)

// Validation failure codes. Front ends turn these into user-facing copy.
const (
	ReasonRequired = "required"
	ReasonInvalid  = "invalid"
)

// ValidationError carries field-level failures of a confirmation attempt
type ValidationError struct {
	Fields map[Field]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f, reason := range e.Fields {
		fields = append(fields, string(f)+" "+reason)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// Has reports whether field failed
func (e *ValidationError) Has(field Field) bool {
	_, ok := e.Fields[field]
	return ok
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidEmail reports whether email is syntactically acceptable
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateIdentity checks both identity fields and reports every failure at once
func ValidateIdentity(name, email string) error {
	fields := make(map[Field]string)
	if strings.TrimSpace(name) == "" {
		fields[FieldName] = ReasonRequired
	}
	if !ValidEmail(email) {
		fields[FieldEmail] = ReasonInvalid
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
