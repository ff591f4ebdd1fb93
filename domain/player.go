// Package domain holds the typed game model: players, runners, running game
// state, and the typed events the dual-channel parser emits.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// PlayerDesc identifies a player by id; name is used for textual matching
// against the prose feed.
type PlayerDesc struct {
	ID   uuid.UUID
	Name string
}

// DisplayName returns the name as the renderer would show it: single quotes
// escaped the way the upstream feed escapes them for HTML display.
func (p PlayerDesc) DisplayName() string {
	return strings.ReplaceAll(p.Name, "'", "&#x27;")
}

// Base identifies first/second/third, 0-indexed.
type Base int

const (
	First Base = iota
	Second
	Third
)

// RunnerDesc is a baserunner: a player plus the base they occupy.
type RunnerDesc struct {
	ID   uuid.UUID
	Name string
	Base Base
}

// DisplayName mirrors PlayerDesc.DisplayName.
func (r RunnerDesc) DisplayName() string {
	return strings.ReplaceAll(r.Name, "'", "&#x27;")
}

// TeamAtBat is which team currently has a batter up. Away is the zero value,
// matching the upstream default.
type TeamAtBat int

const (
	Away TeamAtBat = iota
	Home
)

func (t TeamAtBat) String() string {
	if t == Home {
		return "HOME"
	}
	return "AWAY"
}
