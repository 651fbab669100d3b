package redisstore

import (
	"context"
	"encoding/json"

	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var _ repositories.ProgressPublisher = (*ProgressPublisher)(nil)

// ProgressPublisher fans upload progress out over Redis pub/sub so any API
// instance can stream it to the uploading client
type ProgressPublisher struct {
	client *redis.Client
	log    *zap.Logger
}

// NewProgressPublisher creates a new ProgressPublisher
func NewProgressPublisher(client *redis.Client, log *zap.Logger) *ProgressPublisher {
	return &ProgressPublisher{client: client, log: log}
}

func progressChannel(uploadID string) string { return "upload:progress:" + uploadID }

// Publish sends a progress event to listeners of the upload
func (p *ProgressPublisher) Publish(ctx context.Context, progress models.UploadProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, progressChannel(progress.UploadID), string(data)).Err()
}

// Subscribe listens to an upload's progress until ctx ends
func (p *ProgressPublisher) Subscribe(ctx context.Context, uploadID string) (<-chan models.UploadProgress, error) {
	pubsub := p.client.Subscribe(ctx, progressChannel(uploadID))
	// wait for the subscription to be confirmed so no early event is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	out := make(chan models.UploadProgress)
	msgs := pubsub.Channel()

	go func() {
		defer close(out)
		defer pubsub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var progress models.UploadProgress
				if err := json.Unmarshal([]byte(msg.Payload), &progress); err != nil {
					p.log.Error("failed to unmarshal upload progress", zap.Error(err))
					continue
				}
				select {
				case out <- progress:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
