package allschemas

import "fmt"

// LabelFieldMode selects how TranslateOptionsWith treats an alternate label
// field.
type LabelFieldMode int

const (
	// LabelFieldLegacy writes the translation of record[labelField] under the
	// literal key "labelField". Consumers rely on this spelling.
	LabelFieldLegacy LabelFieldMode = iota
	// LabelFieldCorrected writes the translation back to record[labelField].
	LabelFieldCorrected
)

// ParseLabelFieldMode maps "legacy" and "corrected" to modes. Anything else
// is legacy.
func ParseLabelFieldMode(s string) LabelFieldMode {
	if s == "corrected" {
		return LabelFieldCorrected
	}
	return LabelFieldLegacy
}

func (m LabelFieldMode) String() string {
	if m == LabelFieldCorrected {
		return "corrected"
	}
	return "legacy"
}

// TranslateOptions translates the label of every option in legacy mode.
func TranslateOptions(options []Option, labelField string, tr Translator) []Option {
	return TranslateOptionsWith(options, labelField, tr, LabelFieldLegacy)
}

// TranslateOptionsWith returns a new list where each option's label text is
// translated with tr. With no labelField the "label" key is translated in
// place; otherwise the value at labelField is translated and stored according
// to mode. Records are copied before writing, order is kept.
func TranslateOptionsWith(options []Option, labelField string, tr Translator, mode LabelFieldMode) []Option {
	out := make([]Option, 0, len(options))
	for _, o := range options {
		cp := make(Option, len(o)+1)
		for k, v := range o {
			cp[k] = v
		}
		switch {
		case labelField == "":
			cp[KeyLabel] = tr.Translate(text(o[KeyLabel]))
		case mode == LabelFieldCorrected:
			cp[labelField] = tr.Translate(text(o[labelField]))
		default:
			cp[KeyLabelField] = tr.Translate(text(o[labelField]))
		}
		out = append(out, cp)
	}
	return out
}

func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
