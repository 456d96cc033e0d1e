// Package validate checks email form submissions before they are sent.
//
// Check is a pure function over a snapshot of field values, so it can be
// tested without a page. Validator pairs it with a Notifier that tells the
// user what went wrong.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/romdo/go-inputkit/notify"
)

// Values is a snapshot of form field values keyed by field name.
type Values map[string]string

// Rule describes the checks for one form field.
type Rule struct {
	Field    string
	Label    string
	Required bool
	Email    bool
}

// Schema is an ordered list of rules. Order decides which field is reported
// first.
type Schema []Rule

// EmailSchema requires every field of the add-email form and checks both
// addresses.
var EmailSchema = Schema{
	{Field: "subject", Label: "subject", Required: true},
	{Field: "sender", Label: "sender", Required: true, Email: true},
	{Field: "recipient", Label: "recipient", Required: true, Email: true},
	{Field: "content", Label: "content", Required: true},
}

// ContentSchema only requires the email body.
var ContentSchema = Schema{
	{Field: "content", Label: "content", Required: true},
}

// SchemaFor returns EmailSchema when strict is set and ContentSchema
// otherwise.
func SchemaFor(strict bool) Schema {
	if strict {
		return EmailSchema
	}

	return ContentSchema
}

// Category is the kind of rule a submission violated.
type Category int

const (
	CategoryMissing Category = iota + 1
	CategoryMalformedEmail
)

func (c Category) String() string {
	switch c {
	case CategoryMissing:
		return "missing"
	case CategoryMalformedEmail:
		return "malformed_email"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Error describes the first violated rule category of a submission. Field is
// the first offending field. Message is meant for the user.
type Error struct {
	Category Category
	Field    string
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validate: %s: %s: %s", e.Category, e.Field, e.Message)
}

// Check validates values against schema. Required fields are checked first,
// across the whole schema; email shapes are only checked once nothing is
// missing. Values are trimmed before every check. It returns nil or an *Error.
func Check(schema Schema, values Values) error {
	var missing []Rule
	for _, r := range schema {
		if r.Required && strings.TrimSpace(values[r.Field]) == "" {
			missing = append(missing, r)
		}
	}

	switch len(missing) {
	case 0:
	case 1:
		return &Error{
			Category: CategoryMissing,
			Field:    missing[0].Field,
			Message:  fmt.Sprintf("Please fill in the %s field", missing[0].Label),
		}
	default:
		return &Error{
			Category: CategoryMissing,
			Field:    missing[0].Field,
			Message:  "Please fill in all required fields",
		}
	}

	for _, r := range schema {
		if !r.Email {
			continue
		}

		v := strings.TrimSpace(values[r.Field])
		if v == "" {
			continue
		}

		if !IsEmail(v) {
			return &Error{
				Category: CategoryMalformedEmail,
				Field:    r.Field,
				Message: fmt.Sprintf(
					"Please enter a valid email address for %s", r.Label,
				),
			}
		}
	}

	return nil
}

// Notifier is what a Validator reports failures to.
type Notifier interface {
	Notify(message string, severity notify.Severity)
}

// Validator checks submissions against a schema and notifies the user about
// the first problem found.
type Validator struct {
	schema   Schema
	notifier Notifier
}

// New returns a Validator for schema reporting to n. n may be nil.
func New(schema Schema, n Notifier) *Validator {
	return &Validator{schema: schema, notifier: n}
}

// Validate returns true when values pass every rule. Otherwise it sends an
// error notification describing the first violated category and returns
// false.
func (v *Validator) Validate(values Values) bool {
	return v.Check(values) == nil
}

// Check is Validate returning the *Error it reported instead of a bool.
func (v *Validator) Check(values Values) error {
	err := Check(v.schema, values)
	if err == nil {
		return nil
	}

	if v.notifier != nil {
		msg := err.Error()
		var verr *Error
		if errors.As(err, &verr) {
			msg = verr.Message
		}
		v.notifier.Notify(msg, notify.Error)
	}

	return err
}
