package blueprint

import (
	"fmt"

	"github.com/cppsmith/cppsmith/internal/project"
)

// ValidationError represents a blueprint validation error with context
type ValidationError struct {
	Field      string // Field path (e.g., "modules[0].classes[1].name")
	Message    string // Error message
	Suggestion string // Helpful suggestion (optional)
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	result := fmt.Sprintf("found %d validation errors:\n", len(e))
	for i, err := range e {
		result += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return result
}

// Validate checks document structure and that every entity name is a valid
// identifier (its own sanitized form). Variable declarations are free-form
// and deliberately not validated.
func (bp *Blueprint) Validate() error {
	var errs ValidationErrors

	if bp.APIVersion == "" {
		errs = append(errs, ValidationError{Field: "apiVersion", Message: "apiVersion is required"})
	}
	if bp.Kind != "" && bp.Kind != "Project" {
		errs = append(errs, ValidationError{Field: "kind", Message: fmt.Sprintf("unsupported kind %q", bp.Kind), Suggestion: "use kind: Project"})
	}

	errs = appendNameErrors(errs, "name", bp.Name)

	if bp.Namespace != "" && project.Sanitize(bp.Namespace) != bp.Namespace {
		errs = append(errs, ValidationError{
			Field:   "namespace",
			Message: fmt.Sprintf("%q is not a valid namespace", bp.Namespace),
		})
	}

	for i, m := range bp.Modules {
		errs = appendNameErrors(errs, fmt.Sprintf("modules[%d].name", i), m.Name)

		for j, c := range m.Classes {
			errs = appendNameErrors(errs, fmt.Sprintf("modules[%d].classes[%d].name", i, j), c.Name)

			for k, fn := range c.PublicFunctions {
				errs = appendNameErrors(errs, fmt.Sprintf("modules[%d].classes[%d].public_functions[%d].name", i, j, k), fn.Name)
			}
			for k, fn := range c.PrivateFunctions {
				errs = appendNameErrors(errs, fmt.Sprintf("modules[%d].classes[%d].private_functions[%d].name", i, j, k), fn.Name)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func appendNameErrors(errs ValidationErrors, field, name string) ValidationErrors {
	if name == "" {
		return append(errs, ValidationError{Field: field, Message: "name is required"})
	}
	if project.Sanitize(name) != name {
		return append(errs, ValidationError{
			Field:      field,
			Message:    fmt.Sprintf("%q is not a valid identifier", name),
			Suggestion: fmt.Sprintf("use %q", project.Sanitize(name)),
		})
	}
	return errs
}
