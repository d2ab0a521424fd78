// SPDX-License-Identifier: MIT

package airline

import "errors"

// Sentinel errors returned by the managers.
var (
	// ErrUnknownAirport indicates an airport code that was never registered.
	ErrUnknownAirport = errors.New("airline: unknown airport")

	// ErrDuplicateAirport indicates a second registration of the same code.
	ErrDuplicateAirport = errors.New("airline: airport already registered")

	// ErrUnknownPassenger indicates a passenger ID that was never registered.
	ErrUnknownPassenger = errors.New("airline: unknown passenger")

	// ErrDuplicatePassenger indicates a second registration of the same ID.
	ErrDuplicatePassenger = errors.New("airline: passenger already registered")

	// ErrInvalidCode indicates an empty airport code or passenger ID.
	ErrInvalidCode = errors.New("airline: empty identifier")

	// ErrNoRoute is returned by route queries when the destination cannot be
	// reached from the origin.
	ErrNoRoute = errors.New("airline: no route")

	// ErrUnknownAirplane indicates an airplane ID not present in the fleet.
	ErrUnknownAirplane = errors.New("airline: unknown airplane")

	// ErrDuplicateAirplane indicates a second airplane with the same ID.
	ErrDuplicateAirplane = errors.New("airline: airplane already in fleet")

	// ErrNoFlights is returned when the history or the board is empty.
	ErrNoFlights = errors.New("airline: no flights")

	// ErrUnknownFlight indicates a flight number not on the board.
	ErrUnknownFlight = errors.New("airline: unknown flight")
)
