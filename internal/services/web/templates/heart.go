package templates

const (
	heartFormID    = "heart-form"
	heartSubmitID  = "heart-submit"
	heartOutcomeID = "heart-outcome"
	heartResultID  = "heart-result"
	heartSubmitSel = "#" + heartFormID + " button[type=submit]"
)

// FieldView is one rendered heart form input.
type FieldView struct {
	Name        string
	Label       string
	Numeric     bool
	Placeholder string
	Min         string
	Max         string
	Step        string
	Value       string
	Invalid     bool
	Options     []OptionView
}

// OptionView is one choice of an enumerated input.
type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

// RiskView is a decoded heart model response. Level is "high", "low" or "other".
type RiskView struct {
	Label       string
	Probability string
	Level       string
}

// HeartView carries the heart form state.
type HeartView struct {
	Fields        []FieldView
	Remaining     int
	SubmitEnabled bool
	Result        *RiskView
	Error         string
}

func fieldID(field FieldView) string { return "field-" + field.Name }

func invalidClass(invalid bool) string {
	if invalid {
		return "is-invalid"
	}
	return ""
}
