// SPDX-License-Identifier: MIT

package airline_test

import (
	"bytes"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/airline"
	"github.com/katalvlaran/skyroute/list"
)

func TestAirportDirectory(t *testing.T) {
	d := airline.NewAirportDirectory()
	for _, c := range []string{"SFO", "ATL", "LHR", "CDG"} {
		require.NoError(t, d.Register(airline.Airport{Code: c, Name: c + " Intl"}))
	}
	require.ErrorIs(t, d.Register(airline.Airport{Code: "LHR"}), airline.ErrDuplicateAirport)
	require.ErrorIs(t, d.Register(airline.Airport{}), airline.ErrInvalidCode)
	assert.Equal(t, 4, d.Len())

	a, err := d.Lookup("LHR")
	require.NoError(t, err)
	assert.Equal(t, "LHR Intl", a.Name)
	_, err = d.Lookup("XXX")
	assert.ErrorIs(t, err, airline.ErrUnknownAirport)

	var codes []string
	for _, a := range d.All() {
		codes = append(codes, a.Code)
	}
	assert.Equal(t, []string{"ATL", "CDG", "LHR", "SFO"}, codes)
}

func TestPassengerDirectory(t *testing.T) {
	d := airline.NewPassengerDirectory()
	for i := 0; i < 50; i++ {
		require.NoError(t, d.Register(airline.Passenger{ID: fmt.Sprintf("P%03d", i), Name: "n"}))
	}
	require.ErrorIs(t, d.Register(airline.Passenger{ID: "P007"}), airline.ErrDuplicatePassenger)

	require.NoError(t, d.Remove("P007"))
	assert.ErrorIs(t, d.Remove("P007"), airline.ErrUnknownPassenger)
	_, err := d.Lookup("P007")
	assert.ErrorIs(t, err, airline.ErrUnknownPassenger)
	assert.Equal(t, 49, d.Len())

	p, err := d.Lookup("P042")
	require.NoError(t, err)
	assert.Equal(t, "P042", p.ID)
	assert.Equal(t, "P000", d.All()[0].ID)
}

// TestPassengerDirectoryConcurrent exercises the manager lock under -race.
func TestPassengerDirectoryConcurrent(t *testing.T) {
	d := airline.NewPassengerDirectory()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				id := fmt.Sprintf("W%d-%d", w, i)
				assert.NoError(t, d.Register(airline.Passenger{ID: id}))
				_, err := d.Lookup(id)
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()
	assert.Equal(t, 800, d.Len())
}

func TestFleetBoardingAndHistory(t *testing.T) {
	var buf bytes.Buffer
	f := airline.NewFleet(airline.WithLogger(zerolog.New(&buf)))
	require.NoError(t, f.Add("N1", "A320", 2))
	require.ErrorIs(t, f.Add("N1", "A321", 2), airline.ErrDuplicateAirplane)
	require.Error(t, f.Add("N2", "A321", 0))
	assert.Equal(t, 1, f.Len())

	for _, p := range []string{"P1", "P2", "P3"} {
		require.NoError(t, f.Board("N1", p))
	}
	require.ErrorIs(t, f.Board("N9", "P1"), airline.ErrUnknownAirplane)

	_, err := f.LastFlight()
	require.ErrorIs(t, err, airline.ErrNoFlights)

	fl, err := f.Depart("N1", "SR100", "LHR", "JFK")
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "P2"}, fl.Passengers)
	waiting, err := f.Waiting("N1")
	require.NoError(t, err)
	assert.Equal(t, []string{"P3"}, waiting)
	assert.Contains(t, buf.String(), `"flight":"SR100"`)

	_, err = f.Depart("N1", "SR101", "JFK", "LHR")
	require.NoError(t, err)

	last, err := f.LastFlight()
	require.NoError(t, err)
	assert.Equal(t, "SR101", last.Number)
	assert.Equal(t, []string{"P3"}, last.Passengers)

	hist := f.History()
	require.Len(t, hist, 2)
	assert.Equal(t, "SR101", hist[0].Number)
	assert.Equal(t, "SR100", hist[1].Number)

	undone, err := f.UndoLastFlight()
	require.NoError(t, err)
	assert.Equal(t, "SR101", undone.Number)
	assert.Len(t, f.History(), 1)

	p, err := f.Get("N1")
	require.NoError(t, err)
	assert.Equal(t, "A320", p.Model)
}

func TestDeparturesBoard(t *testing.T) {
	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	b := airline.NewDeparturesBoard()
	b.Schedule(airline.Flight{Number: "F3", Departure: base.Add(3 * time.Hour)})
	b.Schedule(airline.Flight{Number: "F1", Departure: base.Add(1 * time.Hour)})
	b.Schedule(airline.Flight{Number: "F4", Departure: base.Add(4 * time.Hour)})
	b.Schedule(airline.Flight{Number: "F2", Departure: base.Add(1 * time.Hour)})

	numbers := func() []string {
		var out []string
		for _, fl := range b.Flights() {
			out = append(out, fl.Number)
		}
		return out
	}
	assert.Equal(t, []string{"F1", "F2", "F3", "F4"}, numbers())
	assert.Equal(t, 4, b.Len())

	fl, err := b.At(2)
	require.NoError(t, err)
	assert.Equal(t, "F3", fl.Number)
	_, err = b.At(9)
	assert.ErrorIs(t, err, list.ErrIndexOutOfRange)

	require.NoError(t, b.Cancel("F3"))
	assert.ErrorIs(t, b.Cancel("F3"), airline.ErrUnknownFlight)

	next, err := b.Next()
	require.NoError(t, err)
	assert.Equal(t, "F1", next.Number)
	assert.Equal(t, []string{"F2", "F4"}, numbers())

	_, _ = b.Next()
	_, _ = b.Next()
	_, err = b.Next()
	assert.ErrorIs(t, err, airline.ErrNoFlights)
}
