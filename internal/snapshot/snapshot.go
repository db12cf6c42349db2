// Package snapshot reads the JSON backup the tracker produces: the
// three collections the export engine consumes, already fetched from
// whatever persistence the tracker uses. This is the caller-side input
// boundary; the engine itself never touches files.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"fintrack/pkg/contracts/domain"
)

var validate = validator.New()

// Snapshot holds the read-only collections an export call borrows.
type Snapshot struct {
	Transactions []domain.Transaction `json:"transactions" validate:"dive"`
	Accounts     []domain.Account     `json:"accounts" validate:"dive"`
	Categories   []domain.Category    `json:"categories" validate:"dive"`
}

// Load reads and validates a snapshot file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	snap, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return snap, nil
}

// Parse decodes and validates snapshot bytes. Records missing an id
// get a generated one, matching the tracker's own import behavior.
// Dangling account or category references are allowed here; the
// resolver substitutes placeholders for them during export.
func Parse(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	snap.assignIDs()
	if err := validate.Struct(&snap); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return &snap, nil
}

func (s *Snapshot) assignIDs() {
	for i := range s.Transactions {
		if s.Transactions[i].ID == "" {
			s.Transactions[i].ID = uuid.NewString()
		}
	}
	for i := range s.Accounts {
		if s.Accounts[i].ID == "" {
			s.Accounts[i].ID = uuid.NewString()
		}
	}
	for i := range s.Categories {
		if s.Categories[i].ID == "" {
			s.Categories[i].ID = uuid.NewString()
		}
	}
}
