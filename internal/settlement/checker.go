// Package settlement surfaces the daily settlement summary.
//
// The checker polls the wall clock and fires the notify callback exactly
// once per calendar day, the first time the configured settlement time has
// been crossed.
package settlement

import (
	"context"
	"time"

	"github.com/pocketdiary/backend/internal/budget"
	"github.com/pocketdiary/backend/internal/types"
	"github.com/rs/zerolog/log"
)

const defaultInterval = time.Minute

// Checker runs the daily settlement check.
type Checker struct {
	// SettlementTime returns the configured "HH:mm" time. It is read on
	// every tick so settings changes apply without a restart.
	SettlementTime func() (string, error)

	// Breakdown computes the day's figures.
	Breakdown func(types.Date) (budget.Breakdown, error)

	// Notify receives the breakdown once per day. When nil, the summary is
	// only logged.
	Notify func(budget.Breakdown)

	// Interval between checks, defaults to one minute.
	Interval time.Duration

	// now is replaced in tests
	now func() time.Time

	lastTriggered types.Date
}

// Run blocks until the context is canceled, checking at every interval
// whether today's settlement is due.
func (c *Checker) Run(ctx context.Context) {
	interval := c.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Debug().Dur("interval", interval).Msg("Settlement")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}

// Tick performs a single settlement check.
func (c *Checker) Tick() {
	now := time.Now()
	if c.now != nil {
		now = c.now()
	}

	today := types.DateOf(now)
	if c.lastTriggered.Equal(today) {
		return
	}

	configured, err := c.SettlementTime()
	if err != nil {
		log.Error().Err(err).Msg("Settlement")
		return
	}

	due, err := time.Parse("15:04", configured)
	if err != nil {
		// Stored settlement times are validated on save
		log.Error().Err(err).Str("settlementTime", configured).Msg("Settlement")
		return
	}

	year, month, day := now.Date()
	at := time.Date(year, month, day, due.Hour(), due.Minute(), 0, 0, now.Location())
	if now.Before(at) {
		return
	}

	breakdown, err := c.Breakdown(today)
	if err != nil {
		log.Error().Err(err).Msg("Settlement")
		return
	}

	c.lastTriggered = today

	log.Info().
		Str("date", today.String()).
		Str("todaySpent", breakdown.TodaySpent.String()).
		Str("todaySaved", breakdown.TodaySaved.String()).
		Str("totalSaved", breakdown.TotalSaved.String()).
		Str("tomorrowBudget", breakdown.TomorrowBudget.String()).
		Msg("Settlement")

	if c.Notify != nil {
		c.Notify(breakdown)
	}
}
