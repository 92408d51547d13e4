package validator

import (
	"fmt"
	"sort"
)

// Name identifies a validator in the table.
type Name string

const (
	Present      Name = "present"
	Absent       Name = "absent"
	Confirmed    Name = "confirmed"
	Format       Name = "format"
	Length       Name = "length"
	WithFunction Name = "withFunction"
)

var table = map[Name]Func{
	Present:      ValidatePresent,
	Absent:       ValidateAbsent,
	Confirmed:    ValidateConfirmed,
	Format:       ValidateFormat,
	Length:       ValidateLength,
	WithFunction: ValidateWithFunction,
}

// Lookup returns the validator registered under name.
func Lookup(name Name) (Func, bool) {
	fn, ok := table[name]
	return fn, ok
}

// Names lists every validator name in sorted order.
func Names() []Name {
	names := make([]Name, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ParseName converts s into a known Name.
func ParseName(s string) (Name, error) {
	name := Name(s)
	if _, ok := table[name]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownValidator, s)
	}
	return name, nil
}

// Run looks up the validator by name and invokes it.
func Run(name Name, field string, value any, params Params, rule Rule) (*ValidationError, error) {
	fn, ok := table[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}
	return fn(field, value, params, rule)
}
