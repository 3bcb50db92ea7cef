// Package events simulates the upstream line-of-business systems that
// would push notifications into user workspaces. A cron schedule drives
// a rotating set of demo events; real integrations would replace the
// simulator behind the same Feed interface.
package events

import (
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Feed is the workspace surface the simulator pushes into
type Feed interface {
	Notify(userID, app, message string) error
	ActiveUsers() []string
}

// demoEvents rotate through the feed, one per tick
var demoEvents = []struct{ app, message string }{
	{"ERC", "Quarterly compliance report is ready for review"},
	{"RE Procurement", "Two bids received for solar farm tender"},
	{"Power Purchase", "Agreement PPA-2041 renewal window opens next week"},
	{"Contract Management", "Contract amendment awaiting counter-signature"},
}

// Simulator periodically emits demo notifications into every active
// workspace
type Simulator struct {
	feed   Feed
	cron   *cron.Cron
	logger *zap.Logger

	mu   sync.Mutex
	next int
}

// NewSimulator creates a simulator over the given feed
func NewSimulator(feed Feed, logger *zap.Logger) *Simulator {
	return &Simulator{
		feed:   feed,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start begins emitting on the given cron schedule (standard five-field
// expression, e.g. "*/10 * * * *")
func (s *Simulator) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.Tick); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Notification simulator started", zap.String("schedule", schedule))
	return nil
}

// Stop halts the schedule; a tick in flight finishes
func (s *Simulator) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Tick pushes the next demo event into every active workspace
func (s *Simulator) Tick() {
	s.mu.Lock()
	event := demoEvents[s.next%len(demoEvents)]
	s.next++
	s.mu.Unlock()

	for _, userID := range s.feed.ActiveUsers() {
		if err := s.feed.Notify(userID, event.app, event.message); err != nil {
			s.logger.Warn("Failed to push simulated event",
				zap.String("user", userID),
				zap.Error(err),
			)
		}
	}
}
