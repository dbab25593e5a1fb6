package redispub

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// settingsInvalidateChannel carries company IDs whose business settings
// changed, so every API instance drops its provider cache entry.
const settingsInvalidateChannel = "beteamly:settings:invalidate"

func NewClient(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// Broadcaster fans settings invalidations out across instances over a redis
// pub/sub channel.
type Broadcaster struct {
	rdb *redis.Client
}

func NewBroadcaster(rdb *redis.Client) *Broadcaster {
	return &Broadcaster{rdb: rdb}
}

func (b *Broadcaster) PublishSettingsInvalidation(ctx context.Context, companyID string) error {
	return b.rdb.Publish(ctx, settingsInvalidateChannel, companyID).Err()
}

// ListenSettingsInvalidations subscribes to the invalidation channel and
// calls onInvalidate with each received company ID until ctx is cancelled.
// Delivery is best-effort; a dropped message only means a cache entry lives
// until its next local invalidation.
func (b *Broadcaster) ListenSettingsInvalidations(ctx context.Context, onInvalidate func(companyID string)) {
	pubsub := b.rdb.Subscribe(ctx, settingsInvalidateChannel)

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				onInvalidate(msg.Payload)
			case <-ctx.Done():
				return
			}
		}
	}()

	slog.Info("listening for settings invalidations", "channel", settingsInvalidateChannel)
}
