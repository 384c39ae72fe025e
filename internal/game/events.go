package game

import (
	"time"

	"github.com/dng3rk1d/texasholdem/internal/deck"
)

// EventType identifies a game event
type EventType string

const (
	EventTypeHandStart    EventType = "hand_start"
	EventTypePlayerAction EventType = "player_action"
	EventTypeStreetChange EventType = "street_change"
	EventTypeHandEnd      EventType = "hand_end"
)

func (et EventType) String() string { return string(et) }

// GameEvent represents any event emitted by the engine. Events are the
// outbound half of the engine boundary; subscribers must not mutate the
// engine from inside a callback.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// HandStartEvent is published when a new hand begins, after blinds are
// posted and hole cards dealt.
type HandStartEvent struct {
	HandNum        int
	Dealer         int
	SmallBlindSeat int
	BigBlindSeat   int
	SmallBlind     int
	BigBlind       int
	timestamp      time.Time
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }
func (e HandStartEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published after an action has been applied.
type PlayerActionEvent struct {
	Seat      int
	Name      string
	Act       Action
	Label     string // display label, e.g. "Check" or "All-In 120"
	Amount    int    // chips committed by this action
	Street    Street
	PotAfter  int
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// StreetChangeEvent is published when community cards are dealt and a new
// betting street opens.
type StreetChangeEvent struct {
	Street    Street
	Community []deck.Card
	Pot       int
	timestamp time.Time
}

func (e StreetChangeEvent) EventType() EventType { return EventTypeStreetChange }
func (e StreetChangeEvent) Timestamp() time.Time { return e.timestamp }

// PotAwarded describes one pot's outcome at settlement.
type PotAwarded struct {
	Amount   int
	Winners  []int // seats splitting the pot
	Share    int   // chips per winner
	HandText string
	ByFold   bool
}

// HandEndEvent is published once per hand after settlement. At showdown the
// hole cards of every non-folded player are revealed.
type HandEndEvent struct {
	HandNum   int
	Pots      []PotAwarded
	Community []deck.Card
	Revealed  map[int][]deck.Card
	timestamp time.Time
}

func (e HandEndEvent) EventType() EventType { return EventTypeHandEnd }
func (e HandEndEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber receives game events.
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic synchronous in-memory event bus.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers in subscription order.
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
