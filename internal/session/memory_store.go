package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/coocood/freecache"
)

const megabyte = 1024 * 1024

// MemoryStore keeps sessions in process memory. Used for development and single instance deployments.
type MemoryStore struct {
	cache         *freecache.Cache
	expireSeconds int
}

func NewMemoryStore(sizeMB int, ttl time.Duration) *MemoryStore {
	return newMemoryStore(freecache.NewCache(sizeMB*megabyte), ttl)
}

func newMemoryStore(cache *freecache.Cache, ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	expireSeconds := int(ttl.Seconds())
	if expireSeconds < 1 {
		expireSeconds = 1
	}

	return &MemoryStore{
		cache:         cache,
		expireSeconds: expireSeconds,
	}
}

func memoryKey(telegramID int64) []byte {
	return []byte(strconv.FormatInt(telegramID, 10))
}

func (s *MemoryStore) Get(_ context.Context, telegramID int64) (*State, error) {
	stateBytes, err := s.cache.Get(memoryKey(telegramID))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
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

func (s *MemoryStore) Set(_ context.Context, telegramID int64, state State) error {
	stateBytes, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.cache.Set(memoryKey(telegramID), stateBytes, s.expireSeconds); err != nil {
		return fmt.Errorf("set session: %w", err)
	}

	return nil
}

func (s *MemoryStore) Clear(_ context.Context, telegramID int64) error {
	s.cache.Del(memoryKey(telegramID))
	return nil
}
