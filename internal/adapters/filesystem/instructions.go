package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const defaultInstructions = `Welcome to Chemist 4 U
--------------------------------------------
1. Use 'chemist order' to search medicines by disease.
2. Add medicines by ID and specify quantity to your cart.
3. View or delete items (or quantities) before billing.
4. Payment mode: Cash on Delivery.
5. Bills are saved automatically in the output folder.
`

// InstructionsStore implements secondary.InstructionsStore over a plain text
// file.
type InstructionsStore struct {
	path string
}

// NewInstructionsStore creates an instructions store backed by the given file.
func NewInstructionsStore(path string) *InstructionsStore {
	return &InstructionsStore{path: path}
}

// EnsureDefault writes the default instructions if the file is absent.
func (s *InstructionsStore) EnsureDefault(ctx context.Context) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(defaultInstructions), 0644); err != nil {
		return fmt.Errorf("failed to write instructions: %w", err)
	}
	return nil
}

// Read returns the instructions text.
func (s *InstructionsStore) Read(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read instructions: %w", err)
	}
	return string(data), nil
}
