package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/chemist4u/internal/core/cart"
	"github.com/example/chemist4u/internal/ports/primary"
)

// parseProductID parses a medicine ID from user input. 0 is accepted here:
// prompts treat it as the cancel sentinel.
func parseProductID(input string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid medicine ID %q", strings.TrimSpace(input))
	}
	return id, nil
}

// parseQuantity parses a quantity from user input. Non-positive or
// unparsable input fails with cart.ErrInvalidQuantity so callers can retry.
func parseQuantity(input string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || qty <= 0 {
		return 0, cart.ErrInvalidQuantity
	}
	return qty, nil
}

// parseDecision maps a choice letter to a Decision, restricted to the
// choices valid at the current prompt.
func parseDecision(input string, allowed ...primary.Decision) (primary.Decision, error) {
	var decision primary.Decision
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "b":
		decision = primary.DecisionBill
	case "c":
		decision = primary.DecisionViewCart
	case "d":
		decision = primary.DecisionDelete
	case "m":
		decision = primary.DecisionMainMenu
	default:
		return "", fmt.Errorf("invalid choice %q", strings.TrimSpace(input))
	}

	for _, a := range allowed {
		if decision == a {
			return decision, nil
		}
	}
	return "", fmt.Errorf("invalid choice %q", strings.TrimSpace(input))
}
