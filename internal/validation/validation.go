// Package validation declares required-field policies for request
// bodies as explicit, ordered data. A field counts as missing when its
// value is the zero value, so an empty string and a price of 0 are
// both rejected.
package validation

import "fmt"

// Rule is one required field: the display name used in client-facing
// messages and whether the field was supplied.
type Rule struct {
	Display string
	Present bool
}

func String(display, value string) Rule {
	return Rule{Display: display, Present: value != ""}
}

func Number(display string, value float64) Rule {
	return Rule{Display: display, Present: value != 0}
}

// FirstMissing returns the display name of the first absent field in
// declaration order, or "" when every field is present.
func FirstMissing(rules ...Rule) string {
	for _, r := range rules {
		if !r.Present {
			return r.Display
		}
	}
	return ""
}

func RequiredMessage(display string) string {
	return fmt.Sprintf("The %s field is required", display)
}
