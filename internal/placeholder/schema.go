package placeholder

import (
	"fmt"
	"strings"
)

// Schema declares which keys a template needs. Required keys must have a
// value; optional keys may be absent, in which case they render as the empty
// string when Execute is used.
type Schema struct {
	Required []string `yaml:"required,omitempty" json:"required,omitempty"`
	Optional []string `yaml:"optional,omitempty" json:"optional,omitempty"`
}

// MissingError reports required keys that were not supplied.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing value for required placeholder(s): %s", strings.Join(e.Keys, ", "))
}

// UnknownError reports keys referenced by a template but not declared in its schema.
type UnknownError struct {
	Keys []string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("template references undeclared placeholder(s): %s", strings.Join(e.Keys, ", "))
}

// Declares reports whether key is listed as required or optional.
func (s Schema) Declares(key string) bool {
	for _, k := range s.Required {
		if k == key {
			return true
		}
	}
	for _, k := range s.Optional {
		if k == key {
			return true
		}
	}
	return false
}

// Check verifies that v supplies every required key and that t references
// only declared keys. Undeclared keys are reported before missing ones.
func (s Schema) Check(t Template, v Values) error {
	var unknown []string
	for _, k := range Keys(t) {
		if !s.Declares(k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		return &UnknownError{Keys: unknown}
	}

	var missing []string
	for _, k := range s.Required {
		if _, ok := v[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Keys: missing}
	}
	return nil
}

// Execute renders t with v. With a nil schema it behaves exactly like Render.
// With a schema it checks first and resolves absent optional keys to "".
func Execute(t Template, v Values, s *Schema) (string, error) {
	if s == nil {
		return Render(t, v), nil
	}
	if err := s.Check(t, v); err != nil {
		return "", err
	}

	filled := Merge(v)
	for _, k := range s.Optional {
		if _, ok := filled[k]; !ok {
			filled[k] = ""
		}
	}
	return Render(t, filled), nil
}
