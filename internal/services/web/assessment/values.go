package assessment

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// ErrIncomplete reports a submission attempted with empty fields.
var ErrIncomplete = errors.New("assessment: form is incomplete")

// Values maps field names to raw user input.
type Values map[string]string

// ValuesFromForm copies the declared fields out of a parsed form.
func ValuesFromForm(form url.Values, fields []Field) Values {
	values := make(Values, len(fields))
	for _, field := range fields {
		values[field.Name] = strings.TrimSpace(form.Get(field.Name))
	}
	return values
}

// Get returns the trimmed value for name.
func (v Values) Get(name string) string {
	return strings.TrimSpace(v[name])
}

// Complete reports whether every declared field has a non-empty value.
func (v Values) Complete(fields []Field) bool {
	return len(v.Missing(fields)) == 0
}

// Missing lists declared fields whose value is empty.
func (v Values) Missing(fields []Field) []string {
	var missing []string
	for _, field := range fields {
		if v.Get(field.Name) == "" {
			missing = append(missing, field.Name)
		}
	}
	return missing
}

// Empty reports whether no declared field has a value yet.
func (v Values) Empty(fields []Field) bool {
	return len(v.Missing(fields)) == len(fields)
}

// FieldError describes one value that could not be coerced.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError collects per-field coercion failures.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		parts = append(parts, field.Field+": "+field.Reason)
	}
	return "assessment: invalid values (" + strings.Join(parts, "; ") + ")"
}

// Has reports whether name failed validation.
func (e *ValidationError) Has(name string) bool {
	if e == nil {
		return false
	}
	for _, field := range e.Fields {
		if field.Field == name {
			return true
		}
	}
	return false
}

// Payload coerces every declared field to a float64 keyed by field name.
//
// Enumerated values must be one of the declared options. Range hints are
// not enforced.
func (v Values) Payload(fields []Field) (map[string]float64, error) {
	if !v.Complete(fields) {
		return nil, ErrIncomplete
	}
	payload := make(map[string]float64, len(fields))
	var invalid []FieldError
	for _, field := range fields {
		raw := v.Get(field.Name)
		if field.Kind == FieldEnumerated && !field.HasOption(raw) {
			invalid = append(invalid, FieldError{Field: field.Name, Reason: fmt.Sprintf("%q is not an allowed option", raw)})
			continue
		}
		number, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
			invalid = append(invalid, FieldError{Field: field.Name, Reason: fmt.Sprintf("%q is not a number", raw)})
			continue
		}
		payload[field.Name] = number
	}
	if len(invalid) > 0 {
		return nil, &ValidationError{Fields: invalid}
	}
	return payload, nil
}
