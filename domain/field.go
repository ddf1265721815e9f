package domain

import "errors"

var (
	ErrUnknownField   = errors.New("unknown field")
	ErrUnknownControl = errors.New("unknown control")
)

// Field names one of the three loan inputs.
type Field string

const (
	FieldAmount Field = "amount"
	FieldRate   Field = "rate"
	FieldTenure Field = "tenure"
)

// Fields lists the inputs in display order.
var Fields = []Field{FieldAmount, FieldRate, FieldTenure}

// ParseField maps a field name to its Field.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldAmount, FieldRate, FieldTenure:
		return f, nil
	}
	return "", ErrUnknownField
}

// Label is the caption shown next to the field.
func (f Field) Label() string {
	switch f {
	case FieldAmount:
		return "Loan amount"
	case FieldRate:
		return "Rate of interest (p.a.)"
	case FieldTenure:
		return "Loan tenure"
	}
	return string(f)
}

// Control names a presentation adapter bound to a field.
type Control string

const (
	ControlField  Control = "field"
	ControlSlider Control = "slider"
)

// ParseControl maps a control name to its Control. An empty name means the
// numeric field.
func ParseControl(s string) (Control, error) {
	switch c := Control(s); c {
	case ControlField, ControlSlider:
		return c, nil
	case "":
		return ControlField, nil
	}
	return "", ErrUnknownControl
}

// Bounds is the shared range of a field's numeric entry and slider.
type Bounds struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}
