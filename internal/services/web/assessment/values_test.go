package assessment

import (
	"errors"
	"net/url"
	"testing"
)

func completeHeartValues() Values {
	return Values{
		"age": "54", "sex": "1", "cp": "0", "trestbps": "120", "chol": "240",
		"fbs": "0", "restecg": "1", "thalach": "150", "exang": "0",
		"oldpeak": "1.0", "slope": "2", "ca": "0", "thal": "3",
	}
}

func TestValuesCompleteIffNoFieldEmpty(t *testing.T) {
	t.Parallel()

	fields := HeartFields()
	values := completeHeartValues()
	if !values.Complete(fields) {
		t.Fatal("expected complete values")
	}
	for _, field := range fields {
		partial := completeHeartValues()
		partial[field.Name] = "  "
		if partial.Complete(fields) {
			t.Fatalf("blank %s still complete", field.Name)
		}
		missing := partial.Missing(fields)
		if len(missing) != 1 || missing[0] != field.Name {
			t.Fatalf("Missing() = %v, want [%s]", missing, field.Name)
		}
	}
}

func TestValuesFromFormKeepsOnlyDeclaredFields(t *testing.T) {
	t.Parallel()

	form := url.Values{"age": {" 61 "}, "extra": {"x"}}
	values := ValuesFromForm(form, HeartFields())
	if values.Get("age") != "61" {
		t.Fatalf("age = %q, want 61", values.Get("age"))
	}
	if _, ok := values["extra"]; ok {
		t.Fatal("undeclared field copied")
	}
	if len(values) != 13 {
		t.Fatalf("len(values) = %d, want 13", len(values))
	}
}

func TestPayloadCoercesEveryFieldToNumber(t *testing.T) {
	t.Parallel()

	payload, err := completeHeartValues().Payload(HeartFields())
	if err != nil {
		t.Fatalf("Payload() error = %v", err)
	}
	if len(payload) != 13 {
		t.Fatalf("len(payload) = %d, want 13", len(payload))
	}
	if payload["age"] != 54 || payload["oldpeak"] != 1.0 || payload["thal"] != 3 {
		t.Fatalf("payload = %v", payload)
	}
}

func TestPayloadIgnoresRangeHints(t *testing.T) {
	t.Parallel()

	values := completeHeartValues()
	values["age"] = "150"
	payload, err := values.Payload(HeartFields())
	if err != nil {
		t.Fatalf("Payload() error = %v", err)
	}
	if payload["age"] != 150 {
		t.Fatalf("age = %v, want 150", payload["age"])
	}
}

func TestPayloadRejectsIncompleteAndInvalidValues(t *testing.T) {
	t.Parallel()

	incomplete := completeHeartValues()
	delete(incomplete, "chol")
	if _, err := incomplete.Payload(HeartFields()); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("incomplete err = %v, want ErrIncomplete", err)
	}

	invalid := completeHeartValues()
	invalid["chol"] = "lots"
	invalid["cp"] = "7"
	invalid["age"] = "NaN"
	_, err := invalid.Payload(HeartFields())
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	for _, name := range []string{"chol", "cp", "age"} {
		if !validation.Has(name) {
			t.Fatalf("validation missing %s: %v", name, validation)
		}
	}
	if validation.Has("sex") {
		t.Fatal("valid field reported as invalid")
	}
}
