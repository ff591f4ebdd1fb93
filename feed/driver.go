package feed

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/baseball-sim/feedcore/domain"
	"github.com/baseball-sim/feedcore/phase"
)

// EventSink receives each typed event a Driver produces, in order, so a
// caller can persist or forward it without the driver depending on
// package store directly.
type EventSink interface {
	SaveEvent(ctx context.Context, gameID string, seq int, event domain.Event) error
}

// Driver walks the feed for a set of games and drives one phase.Machine per
// game id, grounded in the teacher's worker-pool split between a fixed
// number of goroutines and the games assigned to each
// (simulation.Engine.RunSimulation's workers/simulationsPerWorker pattern).
// Per-game machines live in a sync.Map rather than a mutex-guarded map
// because the access pattern here is per-key get-or-create from many
// goroutines, not bulk iteration.
type Driver struct {
	client  *Client
	sink    EventSink
	workers int

	machines sync.Map // gameID string -> *phase.Machine
}

// NewDriver returns a driver with the given worker concurrency.
func NewDriver(client *Client, sink EventSink, workers int) *Driver {
	if workers < 1 {
		workers = 1
	}
	return &Driver{client: client, sink: sink, workers: workers}
}

// Run ingests every listed game id concurrently, bounded to d.workers at a
// time, logging and skipping any game whose machine enters an invalid
// state rather than aborting the whole run.
func (d *Driver) Run(ctx context.Context, gameIDs []string) error {
	sem := make(chan struct{}, d.workers)
	var wg sync.WaitGroup

	for _, id := range gameIDs {
		id := id
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			if err := d.ingestGame(ctx, id); err != nil {
				log.Printf("feed: game %s: %v", id, err)
			}
		}()
	}

	wg.Wait()
	return nil
}

func (d *Driver) ingestGame(ctx context.Context, gameID string) error {
	updates, err := d.client.FetchAll(ctx, gameID)
	if err != nil {
		return fmt.Errorf("fetching updates: %w", err)
	}

	sort.SliceStable(updates, func(i, j int) bool {
		if updates[i].Timestamp != updates[j].Timestamp {
			return updates[i].Timestamp < updates[j].Timestamp
		}
		return updates[i].Data.DisplayOrder < updates[j].Data.DisplayOrder
	})

	machineAny, _ := d.machines.LoadOrStore(gameID, phase.New())
	machine := machineAny.(*phase.Machine)

	for seq, u := range updates {
		event, err := machine.Receive(u.Data.ChangedState.ToDomain(), u.Data.DisplayText)
		if err != nil {
			return fmt.Errorf("step %d: %w", seq, err)
		}
		if event == nil {
			continue
		}
		if err := d.sink.SaveEvent(ctx, gameID, seq, event); err != nil {
			return fmt.Errorf("saving event at step %d: %w", seq, err)
		}
	}
	return nil
}
