package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports a field that failed validation. Matched with
// errors.As; persistence is never attempted after one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Validate checks the profile before it is handed to a store. An empty
// username and a negative age are rejected directly; everything else is
// delegated to the struct tag pass (email format, length limits).
func (p *UserProfile) Validate() error {
	if p.Username == "" {
		return &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if p.Age != nil && *p.Age < 0 {
		return &ValidationError{Field: "age", Reason: "must not be negative"}
	}
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ValidationError{
				Field:  strings.ToLower(fe.Field()),
				Reason: fmt.Sprintf("violates %q", fe.Tag()),
			}
		}
		return fmt.Errorf("validate profile: %w", err)
	}
	return nil
}
