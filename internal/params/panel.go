package params

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/maniartech/signals"
)

// ErrUnknownField is returned for keys that name no panel field.
var ErrUnknownField = errors.New("unknown panel field")

// Panel is the debug panel model. It owns the live Values and notifies
// Changed subscribers whenever a geometry field changes.
type Panel struct {
	// Changed fires synchronously with the new values after a geometry
	// field changes.
	Changed signals.Signal[Values]

	values   Values
	fields   []Field
	selected int
	hidden   bool
}

// NewPanel returns a visible panel editing v. Numeric values are clamped to
// their field ranges the same way Set clamps them.
func NewPanel(v Values) *Panel {
	fields := defaultFields()
	for _, f := range fields {
		f.set(&v, f.normalize(f.get(&v)))
	}
	return &Panel{
		Changed: signals.NewSync[Values](),
		values:  v,
		fields:  fields,
	}
}

// Title is the panel heading.
func (p *Panel) Title() string {
	return panelTitle
}

// Values returns a copy of the live values.
func (p *Panel) Values() Values {
	return p.values
}

// Fields returns the panel fields in display order.
func (p *Panel) Fields() []Field {
	return p.fields
}

// Selected returns the index of the highlighted field.
func (p *Panel) Selected() int {
	return p.selected
}

// Next highlights the following field, wrapping around.
func (p *Panel) Next() {
	p.selected = (p.selected + 1) % len(p.fields)
}

// Prev highlights the preceding field, wrapping around.
func (p *Panel) Prev() {
	p.selected = (p.selected + len(p.fields) - 1) % len(p.fields)
}

// Step nudges the highlighted field by dir steps. Boolean fields toggle.
func (p *Panel) Step(dir int) {
	if dir == 0 {
		return
	}
	f := p.fields[p.selected]
	cur := f.get(&p.values)
	if f.Kind == KindBool {
		p.apply(f, boolValue(cur == 0))
		return
	}
	p.apply(f, f.snap(cur+float64(dir)*f.Step))
}

// Toggle flips the highlighted field if it is boolean.
func (p *Panel) Toggle() {
	if p.fields[p.selected].Kind == KindBool {
		p.Step(1)
	}
}

// Set assigns a numeric field, clamped to its range.
func (p *Panel) Set(key string, v float64) error {
	f, err := p.field(key)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: non-finite value %v", key, v)
	}
	p.apply(f, v)
	return nil
}

// SetBool assigns a boolean field.
func (p *Panel) SetBool(key string, b bool) error {
	f, err := p.field(key)
	if err != nil {
		return err
	}
	if f.Kind != KindBool {
		return fmt.Errorf("%s is not a boolean field", key)
	}
	p.apply(f, boolValue(b))
	return nil
}

// Value returns the current value of f.
func (p *Panel) Value(f Field) float64 {
	return f.get(&p.values)
}

// Format renders the current value of f for display.
func (p *Panel) Format(f Field) string {
	v := f.get(&p.values)
	switch f.Kind {
	case KindBool:
		if v != 0 {
			return "[x]"
		}
		return "[ ]"
	case KindInt:
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return !p.hidden
}

// ToggleVisible shows a hidden panel or hides a visible one.
func (p *Panel) ToggleVisible() {
	p.hidden = !p.hidden
}

func (p *Panel) field(key string) (Field, error) {
	for _, f := range p.fields {
		if f.Key == key {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%q: %w", key, ErrUnknownField)
}

func (p *Panel) apply(f Field, v float64) {
	v = f.normalize(v)
	if f.get(&p.values) == v {
		return
	}
	f.set(&p.values, v)
	if f.Regenerates {
		p.Changed.Emit(context.Background(), p.values)
	}
}
