package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tolgay/weekhours/internal/week"
)

// The week snapshot lives in exactly one slot; every save rewrites it.
const ledgerSlot = "current"

// LoadLedger reads the persisted week snapshot. Absent or undecodable
// state comes back as nil with no error, so the caller starts a fresh week
// instead of failing.
func (s *Store) LoadLedger() (*week.Ledger, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM ledger WHERE slot = ?`, ledgerSlot).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	var l week.Ledger
	if err := json.Unmarshal([]byte(data), &l); err != nil {
		// A snapshot we cannot decode is treated as no prior state.
		return nil, nil
	}
	return &l, nil
}

// SaveLedger rewrites the full week snapshot.
func (s *Store) SaveLedger(l week.Ledger) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(
		`INSERT INTO ledger (slot, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		ledgerSlot, string(data), now,
	)
	if err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}
