package locales

import (
	"errors"
	"fmt"
	"strings"

	"habitpet/internal/domain"
)

// Notice returns the user-facing message for an action that state rejected
func (l *Locales) Notice(state domain.State, err error) string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		if errors.Is(err, domain.ErrActionNotAllowed) {
			return l.Common.NotNow
		}
		return l.Common.Error
	}

	var lines []string
	if verr.Has(domain.FieldName) {
		lines = append(lines, l.Identity.NameLabel+": "+l.Identity.NameRequired)
	}
	if verr.Has(domain.FieldEmail) {
		lines = append(lines, l.Identity.EmailLabel+": "+fmt.Sprintf(l.Identity.EmailInvalid, state.Draft.Email))
	}
	for _, f := range domain.BiometricFields {
		if verr.Has(f) {
			lines = append(lines, l.Biometrics.Required)
		}
	}
	if verr.Has(domain.FieldGoal) {
		lines = append(lines, l.Goal.Required)
	}
	return strings.Join(lines, "\n")
}
