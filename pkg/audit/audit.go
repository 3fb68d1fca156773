// Package audit keeps an asynchronous stock-movement trail in MongoDB.
//
// Every inventory mutation is enqueued into a buffered channel and a single
// background goroutine drains it with InsertMany in batches. The design goal
// is zero impact on the request path:
//
//   - Record never blocks; if the queue is full the movement is dropped.
//   - When no MONGO_URI is configured the package is a no-op.
//   - Close flushes the queue and disconnects.
package audit

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/reqid"
)

const (
	queueSize = 4096 // buffered channel capacity
	batchSize = 50   // maximum documents per InsertMany
	drainTick = 2 * time.Second
)

// Movement is one recorded stock mutation.
type Movement struct {
	InventoryID uint      `bson:"inventory_id"`
	ProductID   uint      `bson:"product_id"`
	Op          string    `bson:"op"` // "create" | "update" | "set" | "add" | "remove" | "delete"
	Quantity    int       `bson:"quantity"`
	StockLevel  int       `bson:"stock_level"` // level after the mutation
	RequestID   string    `bson:"request_id,omitempty"`
	At          time.Time `bson:"at"`
}

// Trail is an asynchronous writer of Movement documents.
type Trail struct {
	client *mongo.Client
	col    *mongo.Collection
	queue  chan Movement
	done   chan struct{}
}

// trail is the process-wide instance; nil means auditing is disabled.
var trail *Trail

// Open connects the process-wide trail. Call once at startup; a failure is
// returned so the caller can log a warning and continue without auditing.
func Open(uri, db, collection string) error {
	if uri == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("audit: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("audit: ping: %w", err)
	}

	t := &Trail{
		client: client,
		col:    client.Database(db).Collection(collection),
		queue:  make(chan Movement, queueSize),
		done:   make(chan struct{}),
	}
	go t.drain()

	trail = t
	return nil
}

// Record enqueues one movement. Never blocks; silently drops when the trail
// is disabled or the queue is full. The request ID is read from ctx.
func Record(ctx context.Context, m Movement) {
	t := trail
	if t == nil {
		return
	}

	m.RequestID = reqid.FromCtx(ctx)
	if m.At.IsZero() {
		m.At = time.Now()
	}

	select {
	case t.queue <- m:
	default:
		// queue full — auditing must never block stock mutations
	}
}

// Close flushes pending movements and disconnects. Safe when disabled.
func Close() error {
	t := trail
	if t == nil {
		return nil
	}
	trail = nil

	close(t.queue)
	<-t.done
	return t.client.Disconnect(context.Background())
}

// drain batches queued movements into InsertMany calls. It flushes either
// when a batch fills up or every drainTick, whichever comes first.
func (t *Trail) drain() {
	defer close(t.done)

	ticker := time.NewTicker(drainTick)
	defer ticker.Stop()

	batch := make([]interface{}, 0, batchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if _, err := t.col.InsertMany(ctx, batch); err != nil {
			logger.Warn("audit: insert batch failed", "error", err, "dropped", len(batch))
		}
		cancel()
		batch = batch[:0]
	}

	for {
		select {
		case m, ok := <-t.queue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, m)
			if len(batch) >= batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
