// Package cli contains the cobra commands and the interactive prompting
// layer. All retry-until-valid input loops live here; the core services see
// only validated values.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/chemist4u/internal/ports/primary"
)

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter() *prompter {
	return &prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// line prompts for one line of input, trimmed.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	text, err := p.in.ReadString('\n')
	if err != nil && text == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// productID prompts until a valid medicine ID is entered. 0 means cancel.
func (p *prompter) productID(label string) (int, error) {
	for {
		text, err := p.line(label)
		if err != nil {
			return 0, err
		}
		id, err := parseProductID(text)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input.")
			continue
		}
		return id, nil
	}
}

// quantity prompts until a positive quantity is entered.
func (p *prompter) quantity(label string) (int, error) {
	for {
		text, err := p.line(label)
		if err != nil {
			return 0, err
		}
		qty, err := parseQuantity(text)
		if err != nil {
			fmt.Fprintln(p.out, "Quantity must be >= 1.")
			continue
		}
		return qty, nil
	}
}

// decision prompts until one of the allowed choice letters is entered.
func (p *prompter) decision(label string, allowed ...primary.Decision) (primary.Decision, error) {
	for {
		text, err := p.line(label)
		if err != nil {
			return "", err
		}
		d, err := parseDecision(text, allowed...)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid choice.")
			continue
		}
		return d, nil
	}
}

// yesNo prompts for a y/n answer.
func (p *prompter) yesNo(label string) (bool, error) {
	text, err := p.line(label + " (y/n)")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(text, "y"), nil
}
