package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BatchCollector buffers search events and flushes them to a Publisher when
// the buffer reaches batchSize or every flushInterval, whichever comes first.
// Failed batches are re-queued; the buffer never grows past three batches.
type BatchCollector struct {
	pub           Publisher
	batchSize     int
	flushInterval time.Duration

	mu     sync.Mutex
	buffer []Event

	kick chan struct{}
	done chan struct{}
	log  zerolog.Logger
}

// NewBatchCollector creates a collector. Call Start before tracking events.
func NewBatchCollector(pub Publisher, batchSize int, flushInterval time.Duration) *BatchCollector {
	if batchSize <= 0 {
		batchSize = 100
	}
	if flushInterval <= 0 {
		flushInterval = 5 * time.Second
	}
	return &BatchCollector{
		pub:           pub,
		batchSize:     batchSize,
		flushInterval: flushInterval,
		buffer:        make([]Event, 0, batchSize),
		kick:          make(chan struct{}, 1),
		done:          make(chan struct{}),
		log:           log.With().Str("component", "analytics-collector").Logger(),
	}
}

// Start runs the flush loop until ctx is cancelled, then performs a final
// flush bounded by five seconds.
func (bc *BatchCollector) Start(ctx context.Context) {
	go func() {
		defer close(bc.done)
		ticker := time.NewTicker(bc.flushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				bc.flush(ctx)
			case <-bc.kick:
				bc.flush(ctx)
			case <-ctx.Done():
				flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				bc.flush(flushCtx)
				cancel()
				return
			}
		}
	}()
	bc.log.Info().
		Int("batch_size", bc.batchSize).
		Dur("flush_interval", bc.flushInterval).
		Msg("analytics collector started")
}

// TrackSearch implements Tracker. It never blocks on the broker.
func (bc *BatchCollector) TrackSearch(_ context.Context, ev SearchEvent) {
	bc.mu.Lock()
	bc.buffer = append(bc.buffer, Event{Key: ev.DocumentID, Value: ev})
	full := len(bc.buffer) >= bc.batchSize
	bc.mu.Unlock()

	if full {
		select {
		case bc.kick <- struct{}{}:
		default:
		}
	}
}

// Close waits for the flush loop to exit. The context passed to Start must
// already be cancelled.
func (bc *BatchCollector) Close() {
	<-bc.done
}

// BufferLen returns the number of events waiting to be flushed.
func (bc *BatchCollector) BufferLen() int {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	return len(bc.buffer)
}

func (bc *BatchCollector) flush(ctx context.Context) {
	bc.mu.Lock()
	if len(bc.buffer) == 0 {
		bc.mu.Unlock()
		return
	}
	batch := bc.buffer
	bc.buffer = make([]Event, 0, bc.batchSize)
	bc.mu.Unlock()

	if err := bc.pub.PublishBatch(ctx, batch); err != nil {
		bc.log.Error().Err(err).Int("batch_size", len(batch)).Msg("batch flush failed")

		bc.mu.Lock()
		bc.buffer = append(batch, bc.buffer...)
		if limit := bc.batchSize * 3; len(bc.buffer) > limit {
			dropped := len(bc.buffer) - limit
			bc.buffer = bc.buffer[:limit]
			bc.log.Warn().Int("dropped", dropped).Msg("analytics buffer overflow, events dropped")
		}
		bc.mu.Unlock()
		return
	}
	bc.log.Debug().Int("events", len(batch)).Msg("batch flushed")
}
