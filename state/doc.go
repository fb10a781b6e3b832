// Package state defines the typed, ordered state vector that flows through
// every edge traversal: a StateModel fixes the names, units, and summary
// behavior (accumulator vs. instantaneous) of each StateVariable position; a
// StateVector is the positional slice of values a traversal carries forward.
package state

import "errors"

// Sentinel errors for state model construction and lookup.
var (
	// ErrUnknownVariable indicates a name was not registered in the StateModel.
	ErrUnknownVariable = errors.New("state: unknown state variable name")

	// ErrDuplicateVariable indicates NewModel was given the same name twice.
	ErrDuplicateVariable = errors.New("state: duplicate state variable name")

	// ErrVectorLengthMismatch indicates a StateVector's length does not match
	// its StateModel's variable count.
	ErrVectorLengthMismatch = errors.New("state: vector length does not match model")
)
