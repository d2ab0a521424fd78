// SPDX-License-Identifier: MIT

package airline

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/skyroute/list"
	"github.com/katalvlaran/skyroute/queue"
	"github.com/katalvlaran/skyroute/stack"
)

// Airplane is one aircraft of the fleet. Passengers board through a FIFO
// queue and leave it when the airplane departs.
type Airplane struct {
	ID       string
	Model    string
	Capacity int

	boarding *queue.Queue[string]
}

// Flight is one departure: who flew, on what, from where to where.
type Flight struct {
	Number     string
	PlaneID    string
	From       string
	To         string
	Departure  time.Time
	Passengers []string
}

// Fleet is the airplane manager. It keeps airplanes in registration order
// and a history of completed departures, most recent first.
type Fleet struct {
	mu      sync.RWMutex
	planes  *list.Singly[*Airplane]
	history *stack.Stack[Flight]
	log     zerolog.Logger
	now     func() time.Time
}

// NewFleet returns an empty fleet.
func NewFleet(opts ...Option) *Fleet {
	s := applyOptions(opts)

	return &Fleet{
		planes:  list.NewFunc(func(a, b *Airplane) bool { return a.ID == b.ID }),
		history: stack.New[Flight](),
		log:     s.logger.With().Str("manager", "fleet").Logger(),
		now:     time.Now,
	}
}

// Add registers an airplane. IDs are unique and Capacity must be positive.
func (f *Fleet) Add(id, model string, capacity int) error {
	if id == "" {
		return ErrInvalidCode
	}
	if capacity < 1 {
		return fmt.Errorf("airline: airplane %s: capacity %d must be positive", id, capacity)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.find(id); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAirplane, id)
	}
	f.planes.Add(&Airplane{ID: id, Model: model, Capacity: capacity, boarding: queue.New[string]()})
	f.log.Debug().Str("plane", id).Int("capacity", capacity).Msg("airplane added")

	return nil
}

// Get returns a copy of the airplane's public fields.
func (f *Fleet) Get(id string) (Airplane, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	p, ok := f.find(id)
	if !ok {
		return Airplane{}, fmt.Errorf("%w: %s", ErrUnknownAirplane, id)
	}

	return Airplane{ID: p.ID, Model: p.Model, Capacity: p.Capacity}, nil
}

// Len returns the number of airplanes.
func (f *Fleet) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.planes.Len()
}

// Board appends a passenger to the airplane's boarding queue.
func (f *Fleet) Board(planeID, passengerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.find(planeID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAirplane, planeID)
	}
	p.boarding.Offer(passengerID)

	return nil
}

// Waiting returns the passengers queued for the airplane, first in line first.
func (f *Fleet) Waiting(planeID string) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	p, ok := f.find(planeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirplane, planeID)
	}

	return p.boarding.Values(), nil
}

// Depart takes up to Capacity passengers off the boarding queue in arrival
// order, records the flight in the history and returns it. Passengers left
// over stay queued for the next departure.
func (f *Fleet) Depart(planeID, number, from, to string) (Flight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.find(planeID)
	if !ok {
		return Flight{}, fmt.Errorf("%w: %s", ErrUnknownAirplane, planeID)
	}
	fl := Flight{Number: number, PlaneID: planeID, From: from, To: to, Departure: f.now()}
	for len(fl.Passengers) < p.Capacity && !p.boarding.IsEmpty() {
		id, _ := p.boarding.Poll()
		fl.Passengers = append(fl.Passengers, id)
	}
	f.history.Push(fl)
	f.log.Info().Str("flight", number).Str("plane", planeID).
		Str("from", from).Str("to", to).Int("passengers", len(fl.Passengers)).
		Int("left_behind", p.boarding.Len()).Msg("departed")

	return fl, nil
}

// LastFlight returns the most recent departure.
func (f *Fleet) LastFlight() (Flight, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	fl, err := f.history.Peek()
	if err != nil {
		return Flight{}, ErrNoFlights
	}

	return fl, nil
}

// UndoLastFlight removes the most recent departure from the history and
// returns it. Its passengers are not re-queued.
func (f *Fleet) UndoLastFlight() (Flight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fl, err := f.history.Pop()
	if err != nil {
		return Flight{}, ErrNoFlights
	}

	return fl, nil
}

// History returns all departures, most recent first.
func (f *Fleet) History() []Flight {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.history.Values()
}

// find looks an airplane up by ID. Callers hold f.mu.
func (f *Fleet) find(id string) (*Airplane, bool) {
	return f.planes.Find(func(p *Airplane) bool { return p.ID == id })
}
