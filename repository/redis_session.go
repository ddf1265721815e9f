package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"emi-calculator/domain"
)

const sessionKeyPrefix = "emi:session:"

// RedisSessionRepository keeps sessions in Redis as JSON with a TTL.
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionRepository(addr string, ttl time.Duration) *RedisSessionRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return NewRedisSessionRepositoryWithClient(rdb, ttl)
}

func NewRedisSessionRepositoryWithClient(client *redis.Client, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{client: client, ttl: ttl}
}

func (r *RedisSessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisSessionRepository) Close() error {
	return r.client.Close()
}

func (r *RedisSessionRepository) Save(ctx context.Context, id string, inputs domain.LoanInputs) error {
	payload, err := json.Marshal(inputs)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+id, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", id, err)
	}
	return nil
}

func (r *RedisSessionRepository) Get(ctx context.Context, id string) (domain.LoanInputs, error) {
	val, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.LoanInputs{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.LoanInputs{}, fmt.Errorf("load session %s: %w", id, err)
	}

	var inputs domain.LoanInputs
	if err := json.Unmarshal(val, &inputs); err != nil {
		return domain.LoanInputs{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return inputs, nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
