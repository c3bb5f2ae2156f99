package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lk16/reversi/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix  = "game:"
	DefaultSessionTTL = 24 * time.Hour
)

var ErrSessionNotFound = errors.New("session not found")

// RedisSessionRepository stores game records in Redis. Records expire after ttl without updates.
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository creates a new RedisSessionRepository.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Save stores the record and resets its TTL.
func (repo *RedisSessionRepository) Save(ctx context.Context, record *models.GameRecord) error {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error marshaling game record: %w", err)
	}

	if err = repo.client.Set(ctx, sessionKey(record.ID), jsonData, repo.ttl).Err(); err != nil {
		return fmt.Errorf("error storing game record: %w", err)
	}

	return nil
}

// Load fetches a record. ErrSessionNotFound is returned for unknown or expired ids.
func (repo *RedisSessionRepository) Load(ctx context.Context, id string) (*models.GameRecord, error) {
	jsonData, err := repo.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("error getting game record: %w", err)
	}

	var record models.GameRecord
	if err = json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshaling game record: %w", err)
	}

	return &record, nil
}

// Delete removes a record. Deleting an unknown id is not an error.
func (repo *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := repo.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("error deleting game record: %w", err)
	}
	return nil
}

// MemorySessionRepository keeps game records in process memory.
type MemorySessionRepository struct {
	// data stores copies of the records by id
	data map[string]models.GameRecord

	// dataMutex protects data
	dataMutex sync.Mutex
}

// NewMemorySessionRepository creates a new MemorySessionRepository.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		data: make(map[string]models.GameRecord),
	}
}

// Save stores a copy of the record.
func (repo *MemorySessionRepository) Save(_ context.Context, record *models.GameRecord) error {
	repo.dataMutex.Lock()
	defer repo.dataMutex.Unlock()

	repo.data[record.ID] = *record
	return nil
}

// Load returns a copy of a stored record.
func (repo *MemorySessionRepository) Load(_ context.Context, id string) (*models.GameRecord, error) {
	repo.dataMutex.Lock()
	defer repo.dataMutex.Unlock()

	record, ok := repo.data[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &record, nil
}

// Delete removes a record.
func (repo *MemorySessionRepository) Delete(_ context.Context, id string) error {
	repo.dataMutex.Lock()
	defer repo.dataMutex.Unlock()

	delete(repo.data, id)
	return nil
}
