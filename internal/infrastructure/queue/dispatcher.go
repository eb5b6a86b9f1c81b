package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/delivery-quote/internal/core/domain"
	"github.com/99minutos/delivery-quote/internal/core/ports"
	"github.com/99minutos/delivery-quote/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// Dispatcher writes quote audit records in the background. Records are sharded
// across workers by cart id so one cart's quotes are persisted in order.
type Dispatcher struct {
	workers []chan domain.QuoteAudit
	repo    ports.QuoteAuditRepository
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.QuoteAuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.QuoteAudit, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.QuoteAudit, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their queue and stop
// when ctx is cancelled; Wait blocks until they have.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has stopped.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands a record to the worker responsible for its cart. It never
// blocks: when the worker queue is full the record is dropped and counted.
func (d *Dispatcher) Enqueue(audit domain.QuoteAudit) {
	idx := d.shardIndex(audit.CartID)
	select {
	case d.workers[idx] <- audit:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditDroppedTotal.Inc()
		d.log.Warn().
			Str("quote_id", audit.QuoteID).
			Str("cart_id", audit.CartID).
			Int("worker_id", idx).
			Msg("audit queue full, record dropped")
	}
}

// shardIndex maps a cart id deterministically to a worker index.
func (d *Dispatcher) shardIndex(cartID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(cartID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.QuoteAudit) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			d.drain(id, ch)
			return
		case audit := <-ch:
			metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.write(ctx, id, audit)
		}
	}
}

// drain persists what is still queued after shutdown, detached from the
// cancelled context.
func (d *Dispatcher) drain(id int, ch <-chan domain.QuoteAudit) {
	for {
		select {
		case audit := <-ch:
			d.write(context.Background(), id, audit)
		default:
			return
		}
	}
}

func (d *Dispatcher) write(ctx context.Context, id int, audit domain.QuoteAudit) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	if err := d.repo.InsertQuote(ctx, &audit); err != nil {
		metrics.AuditErrorsTotal.Inc()
		d.log.Error().Err(err).
			Str("quote_id", audit.QuoteID).
			Str("cart_id", audit.CartID).
			Int("worker_id", id).
			Msg("quote audit write failed")
	}
}
