// Package filesystem contains filesystem-based adapter implementations:
// receipt files in the output directory and the instructions text.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/chemist4u/internal/core/billing"
)

// ReceiptStore implements secondary.ReceiptStore, writing one bill file per
// checkout into the output directory.
type ReceiptStore struct {
	dir string
}

// NewReceiptStore creates a receipt store writing into dir.
func NewReceiptStore(dir string) *ReceiptStore {
	return &ReceiptStore{dir: dir}
}

// Write saves the rendered bill as bill_<TRACKING>.txt and returns its path.
func (s *ReceiptStore) Write(ctx context.Context, trackingID, content string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(s.dir, billing.Filename(trackingID))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write receipt %s: %w", path, err)
	}
	return path, nil
}
