package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrValidation matches every ValidationError via errors.Is
var ErrValidation = errors.New("invalid calculation input")

// ValidationError reports an input that is well typed but outside the domain
// of the calculator, e.g. a goal age that is not after the current age.
type ValidationError struct {
	Operation string
	Field     string
	Message   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Operation + ": " + e.Message
	}
	return e.Operation + ": " + e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(op, field, message string) *ValidationError {
	return &ValidationError{Operation: op, Field: field, Message: message}
}

// inputCheck collects the first validation failure of an operation
type inputCheck struct {
	op  string
	err error
}

func newInputCheck(op string) *inputCheck {
	return &inputCheck{op: op}
}

func (c *inputCheck) fail(field, message string) {
	if c.err == nil {
		c.err = invalid(c.op, field, message)
	}
}

func (c *inputCheck) nonNegative(field string, v decimal.Decimal) {
	if v.IsNegative() {
		c.fail(field, "cannot be negative")
	}
}

func (c *inputCheck) nonNegativeInt(field string, v int) {
	if v < 0 {
		c.fail(field, "cannot be negative")
	}
}

// rate rejects percentages at or below -100%, where the growth base is no longer positive
func (c *inputCheck) rate(field string, v decimal.Decimal) {
	if v.LessThanOrEqual(minusHundred) {
		c.fail(field, "must be greater than -100%")
	}
}

// nonZeroRate is required wherever the nominal monthly rate ends up as a divisor
func (c *inputCheck) nonZeroRate(field string, v decimal.Decimal) {
	c.rate(field, v)
	if v.IsZero() {
		c.fail(field, "must be non-zero, the annuity factor is undefined at 0%")
	}
}

// horizon rejects durations in years beyond MaxHorizonYears
func (c *inputCheck) horizon(field string, years int) {
	if years > MaxHorizonYears {
		c.fail(field, fmt.Sprintf("cannot span more than %d years", MaxHorizonYears))
	}
}

func (c *inputCheck) horizonMonths(field string, months int) {
	if months > MaxHorizonMonths {
		c.fail(field, fmt.Sprintf("cannot exceed %d months", MaxHorizonMonths))
	}
}

func (c *inputCheck) after(field string, v int, otherField string, other int) {
	if v <= other {
		c.fail(field, "must be greater than "+otherField)
	}
}

var minusHundred = decimal.NewFromInt(-100)
