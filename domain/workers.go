package domain

import "context"

// InvalidationPublisher tells other processes that an album's cached like count is stale.
type InvalidationPublisher interface {
	Start(ctx context.Context)

	// Send queues albumID for broadcast. It never blocks the caller.
	Send(albumID string)
}
