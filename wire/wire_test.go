package wire

import (
	"encoding/json"
	"testing"
)

func TestStateDeltaDoubleOption(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantAbsent bool
		wantNull   bool
	}{
		{"absent", `{}`, true, false},
		{"null", `{"batter": null}`, false, true},
		{"set", `{"batter": {"id": "00000000-0000-0000-0000-000000000001", "name": "Jessica Wills"}}`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d StateDelta
			if err := json.Unmarshal([]byte(tt.json), &d); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			out := d.ToDomain()
			if got := out.Batter.IsAbsent(); got != tt.wantAbsent {
				t.Errorf("IsAbsent() = %v, want %v", got, tt.wantAbsent)
			}
			if got := out.Batter.IsNull(); got != tt.wantNull {
				t.Errorf("IsNull() = %v, want %v", got, tt.wantNull)
			}
		})
	}
}

func TestGameEventsResponseDecodesNestedData(t *testing.T) {
	raw := `{
		"items": [
			{
				"gameId": "00000000-0000-0000-0000-000000000001",
				"timestamp": "2024-04-01T18:05:00Z",
				"data": {
					"changedState": {"balls": 1, "strikes": 0},
					"displayDelay": 5,
					"displayOrder": 3,
					"displayText": "Ball, 1-0.",
					"displayTime": "2024-04-01T18:05:01Z"
				}
			}
		],
		"nextPage": "cursor-2"
	}`

	var resp GameEventsResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(resp.Items))
	}
	if resp.NextPage != "cursor-2" {
		t.Errorf("NextPage = %q, want %q", resp.NextPage, "cursor-2")
	}

	item := resp.Items[0]
	if item.Timestamp != "2024-04-01T18:05:00Z" {
		t.Errorf("Timestamp = %q, want %q", item.Timestamp, "2024-04-01T18:05:00Z")
	}
	if item.Data.DisplayOrder != 3 {
		t.Errorf("Data.DisplayOrder = %d, want 3", item.Data.DisplayOrder)
	}
	if item.Data.DisplayText != "Ball, 1-0." {
		t.Errorf("Data.DisplayText = %q, want %q", item.Data.DisplayText, "Ball, 1-0.")
	}
	if item.Data.DisplayDelay != 5 {
		t.Errorf("Data.DisplayDelay = %d, want 5", item.Data.DisplayDelay)
	}

	delta := item.Data.ChangedState.ToDomain()
	balls, ok := delta.Balls.Value()
	if !ok || balls != 1 {
		t.Errorf("ChangedState.Balls = (%v, %v), want (1, true)", balls, ok)
	}
}

func TestStateDeltaSetBatterValue(t *testing.T) {
	var d StateDelta
	raw := `{"batter": {"id": "00000000-0000-0000-0000-000000000001", "name": "Jessica Wills"}}`
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	out := d.ToDomain()
	batter, ok := out.Batter.Value()
	if !ok {
		t.Fatal("expected batter to be set")
	}
	if batter.Name != "Jessica Wills" {
		t.Errorf("name = %q, want %q", batter.Name, "Jessica Wills")
	}
}
