package notifier

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/redis/go-redis/v9"
)

const DefaultChannel = "presale:events"

// publisher is the part of redis.Cmdable the sink needs.
type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSink broadcasts events as JSON Messages on a Redis Pub/Sub channel.
type RedisSink struct {
	client  publisher
	channel string
}

func NewRedisSink(client redis.Cmdable, channel string) *RedisSink {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisSink{client: client, channel: channel}
}

func (s *RedisSink) Publish(ctx context.Context, events []entity.Event) error {
	for _, ev := range events {
		msg, err := NewMessage(ev)
		if err != nil {
			return errors.WithStack(err)
		}
		body, err := json.Marshal(msg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal message")
		}
		if err := s.client.Publish(ctx, s.channel, body).Err(); err != nil {
			return errors.Wrapf(err, "failed to publish %s to %s", ev.Kind, s.channel)
		}
	}
	return nil
}
