package flash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares flash messages between dashboard instances.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func redisKey(key string) string {
	return "flash:" + key
}

func (s *RedisStore) Set(ctx context.Context, key string, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisKey(key), data, ttl).Err()
}

func (s *RedisStore) Pop(ctx context.Context, key string) (Message, bool, error) {
	val, err := s.rdb.GetDel(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Message{}, false, nil
	} else if err != nil {
		return Message{}, false, err
	}

	var msg Message
	if err := json.Unmarshal(val, &msg); err != nil {
		return Message{}, false, err
	}
	return msg, true, nil
}
