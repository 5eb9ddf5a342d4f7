package workers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/album-catalog/domain"
)

const (
	ChannelLikeInvalidation = "album:likes:invalidate"

	invalidationBatchSize = 100
	invalidationQueueSize = 1024
	shutdownFlushTimeout  = 2 * time.Second
)

type invalidationMessage struct {
	Origin   string   `json:"origin"`
	AlbumIDs []string `json:"album_ids"`
}

// invalidationWorker keeps process-local like count caches of several
// instances in step: local invalidations are published on a redis channel as
// soon as they are queued, and invalidations published by other instances are
// applied locally. Peers still serve their old count until the message arrives.
type invalidationWorker struct {
	client   *redis.Client
	cache    domain.LikeCountCache
	instance string
	ch       chan string
}

var _ domain.InvalidationPublisher = (*invalidationWorker)(nil)

func NewInvalidationWorker(client *redis.Client, cache domain.LikeCountCache) *invalidationWorker {
	return &invalidationWorker{
		client:   client,
		cache:    cache,
		instance: uuid.NewString(),
		ch:       make(chan string, invalidationQueueSize),
	}
}

// Send queues albumID for broadcast
func (w *invalidationWorker) Send(albumID string) {
	select {
	case w.ch <- albumID:
	default:
		logrus.Warnf("invalidation queue is full, album %s not broadcast", albumID)
	}
}

// Start publishes queued invalidations until ctx is done. Albums queued while
// a publish is in flight go out together in the next message.
func (w *invalidationWorker) Start(ctx context.Context) {
	for {
		select {
		case albumID := <-w.ch:
			w.flush(ctx, w.drain([]string{albumID}))
		case <-ctx.Done():
			logrus.Info("shutting down invalidation worker, flushing remaining albums...")
			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownFlushTimeout)
			for batch := w.drain(nil); len(batch) > 0; batch = w.drain(nil) {
				w.flush(flushCtx, batch)
			}
			cancel()
			return
		}
	}
}

// drain moves queued albums into batch until the queue is empty or the batch is full.
func (w *invalidationWorker) drain(batch []string) []string {
	for len(batch) < invalidationBatchSize {
		select {
		case albumID := <-w.ch:
			batch = append(batch, albumID)
		default:
			return batch
		}
	}
	return batch
}

func (w *invalidationWorker) flush(ctx context.Context, batch []string) {
	if len(batch) == 0 {
		return
	}

	seen := make(map[string]struct{}, len(batch))
	albumIDs := make([]string, 0, len(batch))
	for _, id := range batch {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		albumIDs = append(albumIDs, id)
	}

	data, err := json.Marshal(invalidationMessage{Origin: w.instance, AlbumIDs: albumIDs})
	if err != nil {
		logrus.Errorf("failed to marshal invalidation message: %v", err)
		return
	}
	if err := w.client.Publish(ctx, ChannelLikeInvalidation, data).Err(); err != nil {
		logrus.Errorf("failed to publish invalidation of %d albums: %v", len(albumIDs), err)
	}
}

// Listen applies invalidations published by other instances until ctx is done.
func (w *invalidationWorker) Listen(ctx context.Context) {
	sub := w.client.Subscribe(ctx, ChannelLikeInvalidation)
	defer func() {
		if err := sub.Close(); err != nil {
			logrus.Warnf("failed to close invalidation subscription: %v", err)
		}
	}()

	w.dispatch(ctx, sub.Channel())
}

func (w *invalidationWorker) dispatch(ctx context.Context, msgs <-chan *redis.Message) {
	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			w.handle(ctx, msg.Payload)
		case <-ctx.Done():
			return
		}
	}
}

func (w *invalidationWorker) handle(ctx context.Context, payload string) {
	var msg invalidationMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		logrus.Warnf("dropped malformed invalidation message: %v", err)
		return
	}
	if msg.Origin == w.instance {
		return
	}
	for _, albumID := range msg.AlbumIDs {
		if err := w.cache.Invalidate(ctx, albumID); err != nil {
			logrus.Errorf("failed to apply remote invalidation of album %s: %v", albumID, err)
		}
	}
}
