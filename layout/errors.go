package layout

import "fmt"

// ValidationError reports malformed geometry or range definitions. It is
// structural: a layout failing validation must not be rendered or encoded.
type ValidationError struct {
	Element string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Element == "" {
		return "layout: " + e.Reason
	}
	return fmt.Sprintf("layout: element %q: %s", e.Element, e.Reason)
}

func validationErrorf(element, format string, args ...any) error {
	return &ValidationError{Element: element, Reason: fmt.Sprintf(format, args...)}
}

// MissingSensorError reports that a bound sensor identifier has no reading
// in the current snapshot. Recoverable at element granularity.
type MissingSensorError struct {
	Sensor string
}

func (e *MissingSensorError) Error() string {
	return fmt.Sprintf("no reading for sensor %q", e.Sensor)
}
