package handler

import "fmt"

// validationError mirrors the error items the API has always returned
// for schema failures: one entry per missing required property.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func missingProperty(field string) validationError {
	return validationError{
		Field:   field,
		Message: fmt.Sprintf("should have required property '%s'", field),
	}
}

// requireFields returns one validation error per empty required field,
// in the order given.
func requireFields(fields map[string]string, order ...string) []validationError {
	var errs []validationError
	for _, name := range order {
		if fields[name] == "" {
			errs = append(errs, missingProperty(name))
		}
	}
	return errs
}
