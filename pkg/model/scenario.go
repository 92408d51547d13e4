package model

import "fmt"

// Scenario is the lifecycle point a validation runs for.
type Scenario string

const (
	// Create runs when a new record is built from params.
	Create Scenario = "create"
	// Update runs when an existing record is changed.
	Update Scenario = "update"
	// Reify runs when a record is rebuilt from stored data.
	Reify Scenario = "reify"
)

// ParseScenario validates s. The empty string is allowed and matches rules
// that are not limited to a scenario.
func ParseScenario(s string) (Scenario, error) {
	switch sc := Scenario(s); sc {
	case "", Create, Update, Reify:
		return sc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScenario, s)
	}
}
