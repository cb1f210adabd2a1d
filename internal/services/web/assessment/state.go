package assessment

import "errors"

// Status is the request lifecycle of one form.
type Status int

const (
	StatusIdle Status = iota
	StatusValidating
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusValidating:
		return "validating"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	// ErrInFlight rejects a submit while another request is outstanding.
	ErrInFlight = errors.New("assessment: request already in flight")
	// ErrNotSubmitting rejects completing a request that was never started.
	ErrNotSubmitting = errors.New("assessment: no request in flight")
)

// lifecycle holds status plus the outcome of the latest request.
// Result and Err are never both set.
type lifecycle[R any] struct {
	status Status
	result *R
	err    error
}

// Status returns the current lifecycle status.
func (l *lifecycle[R]) Status() Status { return l.status }

// Result returns the latest successful result, if any.
func (l *lifecycle[R]) Result() (R, bool) {
	if l.result == nil {
		var zero R
		return zero, false
	}
	return *l.result, true
}

// Err returns the latest failure, if any.
func (l *lifecycle[R]) Err() error { return l.err }

func (l *lifecycle[R]) reset(status Status) {
	l.status = status
	l.result = nil
	l.err = nil
}

func (l *lifecycle[R]) begin() error {
	if l.status == StatusSubmitting {
		return ErrInFlight
	}
	l.reset(StatusSubmitting)
	return nil
}

// Succeed records a successful response for the in-flight request.
func (l *lifecycle[R]) Succeed(result R) error {
	if l.status != StatusSubmitting {
		return ErrNotSubmitting
	}
	l.status = StatusSucceeded
	l.result = &result
	l.err = nil
	return nil
}

// Fail records a terminal failure for the in-flight request.
func (l *lifecycle[R]) Fail(err error) error {
	if l.status != StatusSubmitting {
		return ErrNotSubmitting
	}
	l.status = StatusFailed
	l.result = nil
	l.err = err
	return nil
}

// FormState tracks the structured heart form.
type FormState struct {
	lifecycle[RiskResult]
	fields []Field
	values Values
}

// NewFormState returns an idle form over fields.
func NewFormState(fields []Field) *FormState {
	return &FormState{fields: fields, values: Values{}}
}

// Fields returns the declared fields.
func (s *FormState) Fields() []Field { return s.fields }

// Values returns the current field values.
func (s *FormState) Values() Values { return s.values }

// Edit replaces the values and discards any previous result or error.
func (s *FormState) Edit(values Values) {
	if values == nil {
		values = Values{}
	}
	s.values = values
	if values.Empty(s.fields) {
		s.reset(StatusIdle)
		return
	}
	s.reset(StatusValidating)
}

// Submit moves to submitting and returns the coerced payload.
func (s *FormState) Submit() (map[string]float64, error) {
	if s.status == StatusSubmitting {
		return nil, ErrInFlight
	}
	payload, err := s.values.Payload(s.fields)
	if err != nil {
		return nil, err
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	return payload, nil
}

// SubmitEnabled reports whether the submit control should be active.
func (s *FormState) SubmitEnabled() bool {
	return s.status != StatusSubmitting && s.values.Complete(s.fields)
}
