package main

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/fieldrules/pkg/model"
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

const adultAge = 18

// predicates are the withFunction checks rule files can reference by name.
func predicates() model.Funcs {
	return model.Funcs{
		"adult":    adult,
		"notBlank": notBlank,
	}
}

// adult accepts ages of 18 and above, sent as a JSON number or form text.
func adult(value any, _ validator.Params) bool {
	age, ok := number(value)
	return ok && age >= adultAge
}

// notBlank rejects strings made only of whitespace.
func notBlank(value any, _ validator.Params) bool {
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) != ""
}

func number(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
