package budget

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/pocketdiary/backend/internal/models"
	"github.com/pocketdiary/backend/internal/types"
)

// Memo caches the most recent Breakdown.
//
// Dashboard requests repeat the same computation until an expense or the
// settings change, so a single entry keyed by a fingerprint of the inputs
// is enough. The zero value is ready to use.
type Memo struct {
	mu        sync.Mutex
	key       [32]byte
	breakdown Breakdown
	valid     bool
}

// Compute returns the Breakdown for the inputs, reusing the cached result
// when nothing relevant changed since the last call.
func (m *Memo) Compute(expenses []models.Expense, settings models.Settings, today types.Date) Breakdown {
	key := fingerprint(expenses, settings, today)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.key == key {
		return m.breakdown
	}

	m.breakdown = Compute(expenses, settings, today)
	m.key = key
	m.valid = true

	return m.breakdown
}

// Invalidate drops the cached entry.
func (m *Memo) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.valid = false
}

// fingerprint hashes everything the computation depends on. UpdatedAt
// covers content changes, the ID list covers additions and deletions.
func fingerprint(expenses []models.Expense, settings models.Settings, today types.Date) [32]byte {
	h := sha256.New()
	fmt.Fprintf(h, "%s;%s;%d", today, settings.UpdatedAt.UTC(), settings.MonthStartDay)
	fmt.Fprintf(h, ";%s;%s;%s", settings.TotalBudget, settings.FixedBudget, settings.SavingsGoal)

	for _, expense := range expenses {
		fmt.Fprintf(h, ";%s:%s", expense.ID, expense.UpdatedAt.UTC())
	}

	var key [32]byte
	h.Sum(key[:0])
	return key
}
