package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/2beens/sporttracker/internal/telemetry/tracing"
)

const (
	DefaultTTL = 30 * time.Minute

	redisKeyPrefix = "sporttracker-wizard||"
)

type RedisStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func redisKey(telegramID int64) string {
	return redisKeyPrefix + strconv.FormatInt(telegramID, 10)
}

func (s *RedisStore) Get(ctx context.Context, telegramID int64) (_ *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.redis.get")
	defer func() {
		if errors.Is(err, ErrNoSession) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stateBytes, err := s.redisClient.Get(ctx, redisKey(telegramID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	state := &State{}
	if err := json.Unmarshal(stateBytes, state); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return state, nil
}

func (s *RedisStore) Set(ctx context.Context, telegramID int64, state State) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.redis.set")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	stateBytes, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.redisClient.Set(ctx, redisKey(telegramID), stateBytes, s.ttl).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}

	return nil
}

func (s *RedisStore) Clear(ctx context.Context, telegramID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.redis.clear")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.redisClient.Del(ctx, redisKey(telegramID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
