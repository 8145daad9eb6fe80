// Package status holds the status-code convention shared by every
// astrometry routine.
//
// A Code of zero means success. Positive codes are advisory: the routine
// still returned its best-effort result (for example a date outside the
// range a model was fitted to). Negative codes are hard failures: the
// routine's outputs are left zeroed and must not be used.
package status

import "fmt"

// Code is a routine status.
type Code int

const (
	// OK means the routine completed normally.
	OK Code = 0

	// Dubious is the generic advisory code: the result was computed but
	// the input lies outside the range the model is trusted for.
	Dubious Code = 1

	// Invalid is the generic failure code for unacceptable input.
	Invalid Code = -1

	// UnknownType is returned when an enumerated selector (observed
	// coordinate type, model tag) is not recognised.
	UnknownType Code = -2
)

// OK reports whether the code is exactly zero.
func (c Code) OK() bool { return c == OK }

// Advisory reports whether the code is a warning.
func (c Code) Advisory() bool { return c > 0 }

// Failed reports whether the code is a hard failure.
func (c Code) Failed() bool { return c < 0 }

// Worst merges the codes of several sub-calls: the most negative code
// if any failed, otherwise the most positive, otherwise zero.
func Worst(codes ...Code) Code {
	worst := OK
	for _, c := range codes {
		switch {
		case c < 0:
			if worst >= 0 || c < worst {
				worst = c
			}
		case c > 0:
			if worst >= 0 && c > worst {
				worst = c
			}
		}
	}
	return worst
}

// Error is the error form of a failed status, for callers that prefer
// the Go error idiom.
type Error struct {
	Op     string // routine that failed
	Code   Code   // the negative status it returned
	Reason string // optional human readable reason
}

// Error returns the error message for Error.
func (e *Error) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Code, e.Reason)
}

// Check converts a status into an error. Non-negative codes (success and
// advisories) return nil so the best-effort result can still be used.
func Check(op string, c Code, reason string) error {
	if c >= 0 {
		return nil
	}
	return &Error{Op: op, Code: c, Reason: reason}
}
