// Package wire holds the JSON-facing shapes of the upstream feed and the
// custom decoding that implements its "double option" tri-state convention.
// Keeping this separate from package domain means Optional's Absent/Null/Set
// decoding logic never has to be imported by code that only cares about the
// typed game model.
package wire

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/baseball-sim/feedcore/domain"
)

// Player is the wire shape of a PlayerDesc.
type Player struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (p Player) toDomain() domain.PlayerDesc {
	return domain.PlayerDesc{ID: p.ID, Name: p.Name}
}

// Runner is the wire shape of a RunnerDesc.
type Runner struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Base int       `json:"base"`
}

func (r Runner) toDomain() domain.RunnerDesc {
	return domain.RunnerDesc{ID: r.ID, Name: r.Name, Base: domain.Base(r.Base)}
}

// rawDelta holds the raw shape each double-option field takes on the wire:
// the key is entirely absent, present with a JSON null, or present with a
// value. encoding/json can't distinguish "absent" from "null" once a field
// is unmarshaled into a plain value, so StateDelta captures the raw
// json.RawMessage per field and resolves it in UnmarshalJSON.
type rawDelta struct {
	Batter      json.RawMessage `json:"batter"`
	Pitcher     json.RawMessage `json:"pitcher"`
	Defenders   json.RawMessage `json:"defenders"`
	Baserunners json.RawMessage `json:"baserunners"`
	Started     *bool           `json:"started"`
	TeamAtBat   *string         `json:"teamAtBat"`
	Inning      *int            `json:"inning"`
	TopOfInning *bool           `json:"topOfInning"`
	Balls       *int            `json:"balls"`
	Strikes     *int            `json:"strikes"`
	Outs        *int            `json:"outs"`
	HomeScore   *float64        `json:"homeScore"`
	AwayScore   *float64        `json:"awayScore"`

	present map[string]bool // unexported: ignored by json, set manually below
}

// StateDelta is the wire shape of domain.StateDelta. Construct it via
// json.Unmarshal; ToDomain converts it once the double-option fields have
// been resolved.
type StateDelta struct {
	raw rawDelta
}

// UnmarshalJSON implements the double-option convention: a key missing from
// the object decodes to Absent; present with value `null` decodes to Null;
// present with any other value decodes to Set.
func (d *StateDelta) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &d.raw); err != nil {
		return err
	}
	// json.Unmarshal into *json.RawMessage leaves the field nil when the key
	// is absent, and sets it to the literal bytes "null" when present-null;
	// both must be distinguished from "absent" using the probe map, since a
	// plain struct field has no way to tell "missing key" from "zero value".
	d.raw.present = make(map[string]bool, len(probe))
	for k := range probe {
		d.raw.present[k] = true
	}
	return nil
}

// ToDomain resolves the double-option wire fields into domain.StateDelta.
func (d StateDelta) ToDomain() domain.StateDelta {
	out := domain.StateDelta{}

	if d.raw.present["batter"] {
		if isRawNull(d.raw.Batter) {
			out.Batter = domain.Null[domain.PlayerDesc]()
		} else {
			var p Player
			if err := json.Unmarshal(d.raw.Batter, &p); err == nil {
				out.Batter = domain.Some(p.toDomain())
			}
		}
	}
	if d.raw.present["pitcher"] {
		if isRawNull(d.raw.Pitcher) {
			out.Pitcher = domain.Null[domain.PlayerDesc]()
		} else {
			var p Player
			if err := json.Unmarshal(d.raw.Pitcher, &p); err == nil {
				out.Pitcher = domain.Some(p.toDomain())
			}
		}
	}
	if d.raw.present["defenders"] {
		if isRawNull(d.raw.Defenders) {
			out.Defenders = domain.Null[[]domain.PlayerDesc]()
		} else {
			var ps []Player
			if err := json.Unmarshal(d.raw.Defenders, &ps); err == nil {
				ds := make([]domain.PlayerDesc, len(ps))
				for i, p := range ps {
					ds[i] = p.toDomain()
				}
				out.Defenders = domain.Some(ds)
			}
		}
	}
	if d.raw.present["baserunners"] {
		var rs []Runner
		if err := json.Unmarshal(d.raw.Baserunners, &rs); err == nil {
			runners := make([]domain.RunnerDesc, len(rs))
			for i, r := range rs {
				runners[i] = r.toDomain()
			}
			out.Baserunners = domain.Some(runners)
		}
	}

	if d.raw.Started != nil {
		out.Started = domain.Some(*d.raw.Started)
	}
	if d.raw.TeamAtBat != nil {
		team := domain.Away
		if *d.raw.TeamAtBat == "HOME" {
			team = domain.Home
		}
		out.TeamAtBat = domain.Some(team)
	}
	if d.raw.Inning != nil {
		out.Inning = domain.Some(*d.raw.Inning)
	}
	if d.raw.TopOfInning != nil {
		out.TopOfInning = domain.Some(*d.raw.TopOfInning)
	}
	if d.raw.Balls != nil {
		out.Balls = domain.Some(*d.raw.Balls)
	}
	if d.raw.Strikes != nil {
		out.Strikes = domain.Some(*d.raw.Strikes)
	}
	if d.raw.Outs != nil {
		out.Outs = domain.Some(*d.raw.Outs)
	}
	if d.raw.HomeScore != nil {
		out.HomeScore = domain.Some(*d.raw.HomeScore)
	}
	if d.raw.AwayScore != nil {
		out.AwayScore = domain.Some(*d.raw.AwayScore)
	}

	return out
}

func isRawNull(raw json.RawMessage) bool {
	return raw == nil || string(raw) == "null"
}

// GameUpdate is one item in a feed page: a display line paired with the
// delta it should be fused with, matching spec.md §6's wire shape exactly —
// { gameId, timestamp, data: { changedState, displayDelay, displayOrder,
// displayText, displayTime } }.
type GameUpdate struct {
	GameID    uuid.UUID      `json:"gameId"`
	Timestamp string         `json:"timestamp"`
	Data      GameUpdateData `json:"data"`
}

// GameUpdateData is the nested "data" object spec.md §6 describes.
type GameUpdateData struct {
	ChangedState StateDelta `json:"changedState"`
	DisplayDelay int64      `json:"displayDelay"`
	DisplayOrder int64      `json:"displayOrder"`
	DisplayText  string     `json:"displayText"`
	DisplayTime  string     `json:"displayTime"`
}

// GameEventsResponse is one page of the paginated feed.
type GameEventsResponse struct {
	Items    []GameUpdate `json:"items"`
	NextPage string       `json:"nextPage"`
}
