package heart

import (
	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
	webtemplates "github.com/aiml-healthguard/healthguard/internal/services/web/templates"
)

func heartView(state *assessment.FormState, invalid *assessment.ValidationError, errMessage string, loc webtemplates.Localizer) webtemplates.HeartView {
	values := state.Values()
	fields := state.Fields()
	view := webtemplates.HeartView{
		Fields:        make([]webtemplates.FieldView, 0, len(fields)),
		Remaining:     len(values.Missing(fields)),
		SubmitEnabled: state.SubmitEnabled(),
		Error:         errMessage,
	}
	for _, field := range fields {
		view.Fields = append(view.Fields, fieldView(field, values.Get(field.Name), invalid.Has(field.Name), loc))
	}
	if result, ok := state.Result(); ok {
		view.Result = &webtemplates.RiskView{
			Label:       result.Label,
			Probability: result.Probability,
			Level:       riskLevel(result.Level()),
		}
	}
	return view
}

func fieldView(field assessment.Field, value string, invalid bool, loc webtemplates.Localizer) webtemplates.FieldView {
	view := webtemplates.FieldView{
		Name:    field.Name,
		Label:   webtemplates.T(loc, field.LabelKey),
		Numeric: field.Kind == assessment.FieldNumeric,
		Value:   value,
		Invalid: invalid,
	}
	if view.Numeric {
		view.Placeholder = field.Placeholder
		view.Min = field.MinAttr()
		view.Max = field.MaxAttr()
		view.Step = field.StepAttr()
		return view
	}
	view.Options = make([]webtemplates.OptionView, 0, len(field.Options))
	for _, option := range field.Options {
		view.Options = append(view.Options, webtemplates.OptionView{
			Value:    option.Value,
			Label:    webtemplates.T(loc, option.LabelKey),
			Selected: option.Value == value,
		})
	}
	return view
}

func riskLevel(level assessment.RiskLevel) string {
	switch level {
	case assessment.RiskHigh:
		return "high"
	case assessment.RiskLow:
		return "low"
	default:
		return "other"
	}
}
