package seed

import "fmt"

// LoadError describes a fixture that could not be read, parsed, or applied.
type LoadError struct {
	Path  string // empty when parsing from memory
	Entry string // e.g. "orders[2]"; empty for whole-file failures
	Err   error
}

func (e *LoadError) Error() string {
	msg := "seed"
	if e.Path != "" {
		msg += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Entry != "" {
		msg += " " + e.Entry
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
