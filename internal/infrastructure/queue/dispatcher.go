package queue

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tedcar/rental-console/internal/core/domain"
	"github.com/tedcar/rental-console/internal/pkg/metrics"
)

const defaultWorkers = 4

// Creator is the part of the resource client the importer needs.
type Creator interface {
	Create(ctx context.Context, in domain.VehicleInput) (*domain.Vehicle, error)
}

// Result is the outcome of one imported vehicle. Index is its position in
// the input.
type Result struct {
	Index   int
	Input   domain.VehicleInput
	Vehicle *domain.Vehicle
	Err     error
}

// Importer creates vehicles across a fixed set of workers. Creates are
// independent calls: no ordering between them is guaranteed, only that each
// result lands at its input index.
type Importer struct {
	workers int
	creator Creator
	log     zerolog.Logger
}

// NewImporter creates an Importer. If workers <= 0, defaultWorkers is used.
func NewImporter(workers int, creator Creator, log zerolog.Logger) *Importer {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Importer{workers: workers, creator: creator, log: log}
}

// Import creates every input and returns one Result per input. When ctx is
// cancelled, inputs not yet handed to a worker fail with the context error.
func (im *Importer) Import(ctx context.Context, inputs []domain.VehicleInput) []Result {
	results := make([]Result, len(inputs))
	if len(inputs) == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(im.workers, len(inputs)); w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range jobs {
				results[i] = im.create(ctx, id, i, inputs[i])
			}
		}(w)
	}

feed:
	for i := range inputs {
		select {
		case <-ctx.Done():
			for j := i; j < len(inputs); j++ {
				results[j] = Result{Index: j, Input: inputs[j], Err: ctx.Err()}
				metrics.ImportedVehiclesTotal.WithLabelValues("failed").Inc()
			}
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func (im *Importer) create(ctx context.Context, worker, i int, in domain.VehicleInput) Result {
	v, err := im.creator.Create(ctx, in)
	if err != nil {
		metrics.ImportedVehiclesTotal.WithLabelValues("failed").Inc()
		im.log.Error().Err(err).
			Int("index", i).
			Int("worker_id", worker).
			Msg("vehicle import failed")
		return Result{Index: i, Input: in, Err: err}
	}
	metrics.ImportedVehiclesTotal.WithLabelValues("created").Inc()
	return Result{Index: i, Input: in, Vehicle: v}
}
