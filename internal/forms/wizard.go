// Package forms gates multi-step form wizards on the server: each step's
// payload is validated before the client may move to the next one.
package forms

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUnknownForm = errors.New("unknown form")
	ErrUnknownStep = errors.New("unknown step")
)

// Step is one page of a wizard. New returns a fresh pointer to the struct the
// step's payload is decoded into.
type Step struct {
	Name string
	New  func() any
}

type Wizard struct {
	Name  string
	steps []Step
	v     *validator.Validate
}

func NewWizard(name string, v *validator.Validate, steps ...Step) *Wizard {
	return &Wizard{Name: name, steps: steps, v: v}
}

func (w *Wizard) Steps() []string {
	out := make([]string, len(w.steps))
	for i, s := range w.steps {
		out[i] = s.Name
	}
	return out
}

// Advance decodes body into the step's payload and validates it. On success
// it returns the next step name, or "" after the last step. Validation
// problems come back as FieldErrors.
func (w *Wizard) Advance(step string, body []byte) (string, error) {
	idx := -1
	for i, s := range w.steps {
		if s.Name == step {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", fmt.Errorf("%w %q for form %s", ErrUnknownStep, step, w.Name)
	}

	payload := w.steps[idx].New()
	if len(body) > 0 {
		if err := json.Unmarshal(body, payload); err != nil {
			return "", FieldErrors{"body": "must be a valid JSON object"}
		}
	}
	if err := w.v.Struct(payload); err != nil {
		if fe := FromValidation(err); fe != nil {
			return "", fe
		}
		return "", fmt.Errorf("validate %s/%s: %w", w.Name, step, err)
	}

	if idx == len(w.steps)-1 {
		return "", nil
	}
	return w.steps[idx+1].Name, nil
}

// Registry resolves wizards by name.
type Registry map[string]*Wizard

func (r Registry) Get(name string) (*Wizard, error) {
	w, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownForm, name)
	}
	return w, nil
}
