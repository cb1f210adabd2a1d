package assessment

import "strconv"

// FieldKind distinguishes free numeric inputs from option lists.
type FieldKind int

const (
	FieldNumeric FieldKind = iota
	FieldEnumerated
)

// Option is one allowed value of an enumerated field.
type Option struct {
	Value    string
	LabelKey string
}

// Field describes one structured form input.
//
// Min, Max and Step are rendering hints for numeric inputs; they are not
// enforced when building the payload. Placeholder is an example value.
type Field struct {
	Name        string
	LabelKey    string
	Kind        FieldKind
	Placeholder string
	Min         float64
	Max         float64
	Step        float64
	Options     []Option
}

// HasOption reports whether value is one of the field's declared options.
func (f Field) HasOption(value string) bool {
	for _, option := range f.Options {
		if option.Value == value {
			return true
		}
	}
	return false
}

// StepAttr renders Step for an HTML step attribute.
func (f Field) StepAttr() string {
	if f.Step <= 0 {
		return "1"
	}
	return formatNumber(f.Step)
}

// MinAttr renders Min for an HTML min attribute.
func (f Field) MinAttr() string { return formatNumber(f.Min) }

// MaxAttr renders Max for an HTML max attribute.
func (f Field) MaxAttr() string { return formatNumber(f.Max) }

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func numeric(name string, placeholder string, min float64, max float64, step float64) Field {
	return Field{
		Name:        name,
		LabelKey:    "assessment.field." + name,
		Kind:        FieldNumeric,
		Placeholder: placeholder,
		Min:         min,
		Max:         max,
		Step:        step,
	}
}

func enumerated(name string, options ...Option) Field {
	return Field{
		Name:     name,
		LabelKey: "assessment.field." + name,
		Kind:     FieldEnumerated,
		Options:  options,
	}
}

func opt(value string, key string) Option {
	return Option{Value: value, LabelKey: "assessment.option." + key}
}

// heartFields is the clinical parameter table in submission order.
var heartFields = []Field{
	numeric("age", "54", 1, 120, 0),
	enumerated("sex", opt("1", "male"), opt("0", "female")),
	enumerated("cp",
		opt("0", "typical_angina"),
		opt("1", "atypical_angina"),
		opt("2", "non_anginal_pain"),
		opt("3", "asymptomatic"),
	),
	numeric("trestbps", "120", 50, 250, 0),
	numeric("chol", "240", 100, 600, 0),
	enumerated("fbs", opt("1", "true"), opt("0", "false")),
	enumerated("restecg",
		opt("0", "normal"),
		opt("1", "st_t_abnormality"),
		opt("2", "lv_hypertrophy"),
	),
	numeric("thalach", "150", 60, 220, 0),
	enumerated("exang", opt("1", "yes"), opt("0", "no")),
	numeric("oldpeak", "1.0", 0, 10, 0.1),
	enumerated("slope",
		opt("0", "upsloping"),
		opt("1", "flat"),
		opt("2", "downsloping"),
	),
	enumerated("ca",
		opt("0", "vessels_0"),
		opt("1", "vessels_1"),
		opt("2", "vessels_2"),
		opt("3", "vessels_3"),
	),
	enumerated("thal",
		opt("1", "normal"),
		opt("2", "fixed_defect"),
		opt("3", "reversible_defect"),
	),
}

// HeartFields returns the heart-disease parameter descriptors in order.
func HeartFields() []Field {
	out := make([]Field, len(heartFields))
	for i, field := range heartFields {
		field.Options = append([]Option(nil), field.Options...)
		out[i] = field
	}
	return out
}
