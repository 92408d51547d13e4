package validator

import (
	"fmt"
	"regexp"
)

// Qualifier is the rule parameter. The set of variants is closed:
// Required, FieldRef, Pattern, ExactLength, LengthRange and Predicate.
type Qualifier interface {
	isQualifier()
}

// Required is the flag qualifier used by present and absent.
type Required bool

// FieldRef names the sibling field a confirmed rule compares against.
type FieldRef string

// Pattern wraps the regular expression a format rule matches against.
type Pattern struct {
	*regexp.Regexp
}

// CompilePattern compiles expr into a Pattern.
func CompilePattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: %v", ErrInvalidQualifier, err)
	}
	return Pattern{Regexp: re}, nil
}

// MustPattern is like CompilePattern but panics on a bad expression.
func MustPattern(expr string) Pattern {
	return Pattern{Regexp: regexp.MustCompile(expr)}
}

// ExactLength requires the value to be exactly this long.
type ExactLength int

// LengthRange bounds the value length. Each bound applies only when set.
type LengthRange struct {
	Min    int
	Max    int
	HasMin bool
	HasMax bool
}

// AtLeast returns a range with only a lower bound.
func AtLeast(min int) LengthRange {
	return LengthRange{Min: min, HasMin: true}
}

// AtMost returns a range with only an upper bound.
func AtMost(max int) LengthRange {
	return LengthRange{Max: max, HasMax: true}
}

// Between returns a range with both bounds.
func Between(min, max int) LengthRange {
	return LengthRange{Min: min, Max: max, HasMin: true, HasMax: true}
}

// Predicate is the custom check run by withFunction.
type Predicate func(value any, params Params) bool

func (Required) isQualifier()    {}
func (FieldRef) isQualifier()    {}
func (Pattern) isQualifier()     {}
func (ExactLength) isQualifier() {}
func (LengthRange) isQualifier() {}
func (Predicate) isQualifier()   {}
