package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const defaultPublishTimeout = 2 * time.Second

var ErrEmptyChannel = errors.New("redis channel name is empty")

// Client publishes round results to a Redis pub/sub channel.
type Client struct {
	client  *redis.Client
	channel string
	timeout time.Duration
}

func New(client *redis.Client, channel string, timeout time.Duration) (*Client, error) {
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &Client{
		client:  client,
		channel: channel,
		timeout: timeout,
	}, nil
}

// Publish - sends one round result to the channel as JSON.
func (that *Client) Publish(ctx context.Context, result *entity.RoundResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal round result: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, that.timeout)
	defer cancel()

	if err = that.client.Publish(ctx, that.channel, resultJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish round result: %w", err)
	}

	return nil
}

// Subscribe - returns a subscription to the results channel. Callers must close it.
func (that *Client) Subscribe(ctx context.Context) *redis.PubSub {
	return that.client.Subscribe(ctx, that.channel)
}

// DecodeResult - parses a message received on the results channel.
func DecodeResult(msg *redis.Message) (*entity.RoundResult, error) {
	var result entity.RoundResult
	if err := json.Unmarshal([]byte(msg.Payload), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round result: %w", err)
	}

	return &result, nil
}
