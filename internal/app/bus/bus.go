package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"navkit/internal/config"
	"navkit/internal/config/logger"
)

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventHomeChanged    MessageType = "nav_home_changed"
	EventContentAdded   MessageType = "nav_content_added"
	EventContentRemoved MessageType = "nav_content_removed"
	EventContentCleared MessageType = "nav_content_cleared"
	EventNavigated      MessageType = "nav_navigated"
	EventExit           MessageType = "nav_exit"
)

// Message represents a bus message
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// HomeChanged indicates the home node was replaced
type HomeChanged struct {
	Title string
}

// ContentAdded indicates a node was inserted into the content
type ContentAdded struct {
	Title string
	Index int
	Total int
}

// ContentRemoved indicates a node was removed from the content
type ContentRemoved struct {
	Title string
	Index int
	Total int
}

// ContentCleared indicates every content node was removed
type ContentCleared struct {
	Removed int
}

// Navigated indicates the current node changed
type Navigated struct {
	From  string
	To    string
	Index int
}

// Exit indicates the navigator asked its owner to shut down
type Exit struct {
	Err error
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	cfg         *config.Config
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus
func New(cfg *config.Config, log logger.Logger) Bus {
	if log != nil {
		log = log.WithComponent("bus")
	}

	return &bus{
		cfg:         cfg,
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel closed when ctx is done
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.cfg.Events.Buffer)

	if b.closed {
		close(ch)
		return ch
	}

	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers without blocking the publisher
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { recover() }()

					c <- m
				}(ch, msg)
			}
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case HomeChanged:
		return fmt.Sprintf("{home: %s}", d.Title)
	case ContentAdded:
		return fmt.Sprintf("{node: %s, index: %d, total: %d}", d.Title, d.Index, d.Total)
	case ContentRemoved:
		return fmt.Sprintf("{node: %s, index: %d, total: %d}", d.Title, d.Index, d.Total)
	case ContentCleared:
		return fmt.Sprintf("{removed: %d}", d.Removed)
	case Navigated:
		return fmt.Sprintf("{from: %s, to: %s, index: %d}", d.From, d.To, d.Index)
	case Exit:
		return fmt.Sprintf("{error: %v}", d.Err)
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus interface with no-op methods for testing
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}
