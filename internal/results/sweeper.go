package results

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// Sweeper runs Store.Sweep on a schedule to clean up owner index entries
// left behind after their results expired.
type Sweeper struct {
	store *Store
	cron  *cron.Cron
}

func NewSweeper(store *Store) *Sweeper {
	return &Sweeper{store: store}
}

// Start schedules an hourly sweep. Safe to call once at startup.
func (s *Sweeper) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 * * * *", func() {
		removed, err := s.store.Sweep(context.Background())
		if err != nil {
			log.Printf("result sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("result sweep removed %d stale index entries", removed)
		}
	})
	if err != nil {
		log.Printf("failed to schedule result sweep: %v", err)
		return
	}

	log.Println("result sweeper started (hourly)")
	c.Start()
	s.cron = c
}

// Stop halts the schedule. Pending sweeps finish on their own.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
