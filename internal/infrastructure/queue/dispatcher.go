package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/priorityparcel/portal-api/internal/api/metrics"
	"github.com/priorityparcel/portal-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes zending updates to a fixed set of workers using
// consistent hashing on the tracking code, guaranteeing per-zending
// update ordering.
type Dispatcher struct {
	workers []chan ports.ZendingUpdateInput
	service ports.UpdateService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.UpdateService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ZendingUpdateInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ZendingUpdateInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an update to the worker responsible for its tracking code.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(update ports.ZendingUpdateInput) {
	idx := d.shardIndex(update.TrackingCode)
	d.workers[idx] <- update
	metrics.UpdatesQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a tracking code deterministically to a worker index.
func (d *Dispatcher) shardIndex(trackingCode string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(trackingCode))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ZendingUpdateInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-ch:
			if !ok {
				return
			}
			metrics.UpdatesQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.service.Process(ctx, update); err != nil {
				d.log.Error().Err(err).
					Str("tracking_code", update.TrackingCode).
					Int("worker_id", id).
					Msg("update processing failed")
			}
		}
	}
}
