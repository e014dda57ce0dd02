//go:generate mockgen -source=journal.go -destination=journal_mock.go -package=session
package session

import (
	"context"
	"sync"

	"navkit/internal/app/bus"
	"navkit/internal/config/logger"
)

// Journal subscribes to navigation events and keeps the trail of visited nodes
type Journal interface {
	Start(ctx context.Context)
	Trail() []string
}

type journal struct {
	bus   bus.Bus
	log   logger.Logger
	mu    sync.Mutex
	trail []string
}

// NewJournal creates a new navigation journal
func NewJournal(b bus.Bus, log logger.Logger) Journal {
	return &journal{
		bus: b,
		log: log.WithComponent("journal"),
	}
}

// Start begins consuming bus events until ctx is done or the bus closes
func (j *journal) Start(ctx context.Context) {
	msgCh := j.bus.Subscribe(ctx)

	go func() {
		for msg := range msgCh {
			j.handleEvent(msg)
		}
	}()
}

// Trail returns the titles navigated to so far, oldest first
func (j *journal) Trail() []string {
	j.mu.Lock()
	defer j.mu.Unlock()

	trail := make([]string, len(j.trail))
	copy(trail, j.trail)

	return trail
}

func (j *journal) handleEvent(msg bus.Message) {
	switch msg.Type {
	case bus.EventNavigated:
		if data, ok := msg.Data.(bus.Navigated); ok {
			j.onNavigated(data)
		}
	case bus.EventContentRemoved:
		if data, ok := msg.Data.(bus.ContentRemoved); ok {
			j.log.Debug().Msgf("Removed '%s' at %d, %d left", data.Title, data.Index, data.Total)
		}
	case bus.EventContentCleared:
		if data, ok := msg.Data.(bus.ContentCleared); ok {
			j.log.Info().Msgf("Content cleared (%d removed)", data.Removed)
		}
	case bus.EventExit:
		if data, ok := msg.Data.(bus.Exit); ok {
			j.onExit(data.Err)
		}
	}
}

func (j *journal) onNavigated(data bus.Navigated) {
	j.mu.Lock()
	j.trail = append(j.trail, data.To)
	j.mu.Unlock()

	j.log.Info().Msgf("Navigated '%s' → '%s' (index %d)", data.From, data.To, data.Index)
}

func (j *journal) onExit(err error) {
	if err != nil {
		j.log.Warn().Err(err).Msg("Exit requested but shutdown hook failed")
		return
	}

	j.log.Info().Msg("Exit requested")
}
