package catalog

// ControlKind names a supported form input control.
type ControlKind string

const (
	ControlCheckbox      ControlKind = "checkbox"
	ControlDateInput     ControlKind = "date-input"
	ControlMultiSelect   ControlKind = "multi-select"
	ControlNumberInput   ControlKind = "number-input"
	ControlPasswordInput ControlKind = "password-input"
	ControlRadioGroup    ControlKind = "radio-group"
	ControlSelect        ControlKind = "select"
	ControlTextInput     ControlKind = "text-input"
	ControlTextarea      ControlKind = "textarea"
)

var controlKinds = []ControlKind{
	ControlCheckbox,
	ControlDateInput,
	ControlMultiSelect,
	ControlNumberInput,
	ControlPasswordInput,
	ControlRadioGroup,
	ControlSelect,
	ControlTextInput,
	ControlTextarea,
}

// ControlKinds returns every control kind in catalog order.
func ControlKinds() []ControlKind {
	out := make([]ControlKind, len(controlKinds))
	copy(out, controlKinds)
	return out
}

// ParseControlKind returns the ControlKind named by s.
func ParseControlKind(s string) (ControlKind, bool) {
	for _, k := range controlKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// SpecKind names a supported value specification type.
type SpecKind string

const (
	SpecArray   SpecKind = "ArraySpec"
	SpecBoolean SpecKind = "BooleanSpec"
	SpecNumber  SpecKind = "NumberSpec"
	SpecObject  SpecKind = "ObjectSpec"
	SpecString  SpecKind = "StringSpec"
)

var specKinds = []SpecKind{
	SpecArray,
	SpecBoolean,
	SpecNumber,
	SpecObject,
	SpecString,
}

// SpecKinds returns every spec kind in catalog order.
func SpecKinds() []SpecKind {
	out := make([]SpecKind, len(specKinds))
	copy(out, specKinds)
	return out
}

// ParseSpecKind returns the SpecKind named by s.
func ParseSpecKind(s string) (SpecKind, bool) {
	for _, k := range specKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

func controlNames() []string {
	out := make([]string, len(controlKinds))
	for i, k := range controlKinds {
		out[i] = string(k)
	}
	return out
}

func specNames() []string {
	out := make([]string, len(specKinds))
	for i, k := range specKinds {
		out[i] = string(k)
	}
	return out
}
