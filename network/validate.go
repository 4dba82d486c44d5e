// SPDX-License-Identifier: MIT

package network

import "fmt"

// ValidateCapacitors rejects malformed input before any search starts.
//
// Errors (first failure wins, in input order):
//   - ErrNoCapacitors if caps is empty.
//   - ErrNonFiniteValue if a value is NaN or ±Inf.
//   - ErrNonPositiveValue if a value is ≤ 0.
func ValidateCapacitors(caps []Capacitor) error {
	if len(caps) == 0 {
		return ErrNoCapacitors
	}
	for i := range caps {
		if err := validateValue(caps[i].Value); err != nil {
			return fmt.Errorf("capacitor %d (%s=%g): %w", i, caps[i].ID, caps[i].Value, err)
		}
	}

	return nil
}

// Label returns the public name of node v: "A", "B", "internal-1", …
func Label(v int) string {
	switch v {
	case TerminalA:
		return "A"
	case TerminalB:
		return "B"
	}

	return fmt.Sprintf("internal-%d", v-terminalCount+1)
}
