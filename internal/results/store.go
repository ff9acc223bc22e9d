package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	resultKeyPrefix = "forge:result:" // Result payload: forge:result:{id}
	ownerSetPrefix  = "forge:owner:"  // Set of result IDs per owner: forge:owner:{owner_id}
	resultTTL       = 24 * time.Hour
)

var ErrResultNotFound = errors.New("generation result not found")

// StoredResult is one generated document parked under an opaque id until
// it expires. It is a cache entry, not the document of record.
type StoredResult struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	ProjectName string    `json:"project_name"`
	Document    string    `json:"document"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store keeps generation results in Redis with a fixed TTL and a per-owner
// index set so results can be listed before they expire.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client, ttl: resultTTL}
}

// Put stores the result under a fresh id and returns it.
func (s *Store) Put(ctx context.Context, ownerID, projectName, document string) (string, error) {
	res := StoredResult{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		ProjectName: projectName,
		Document:    document,
		CreatedAt:   time.Now().UTC(),
	}

	data, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.resultKey(res.ID), data, s.ttl)
	if ownerID != "" {
		ownerKey := s.ownerSetKey(ownerID)
		pipe.SAdd(ctx, ownerKey, res.ID)
		pipe.Expire(ctx, ownerKey, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("store result: %w", err)
	}
	return res.ID, nil
}

// Get returns the result for id, scoped to its owner.
func (s *Store) Get(ctx context.Context, ownerID, id string) (*StoredResult, error) {
	data, err := s.client.Get(ctx, s.resultKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrResultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}

	var res StoredResult
	if err := json.Unmarshal([]byte(data), &res); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	if res.OwnerID != ownerID {
		return nil, ErrResultNotFound
	}
	return &res, nil
}

// ListIDs returns the ids still indexed for an owner. Some may have
// expired since the index was written; Get reports those as not found and
// Sweep eventually removes them.
func (s *Store) ListIDs(ctx context.Context, ownerID string) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.ownerSetKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return ids, nil
}

// Sweep walks every owner index set and drops members whose result key has
// already expired. Redis handles payload expiry itself; this keeps the
// index sets from accumulating dead ids.
func (s *Store) Sweep(ctx context.Context) (int, error) {
	removed := 0
	iter := s.client.Scan(ctx, 0, ownerSetPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ownerKey := iter.Val()
		ids, err := s.client.SMembers(ctx, ownerKey).Result()
		if err != nil {
			return removed, fmt.Errorf("sweep members of %s: %w", ownerKey, err)
		}
		for _, id := range ids {
			exists, err := s.client.Exists(ctx, s.resultKey(id)).Result()
			if err != nil {
				return removed, fmt.Errorf("sweep exists check: %w", err)
			}
			if exists == 0 {
				if err := s.client.SRem(ctx, ownerKey, id).Err(); err != nil {
					return removed, fmt.Errorf("sweep remove: %w", err)
				}
				removed++
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("sweep scan: %w", err)
	}
	return removed, nil
}

func (s *Store) resultKey(id string) string {
	return resultKeyPrefix + id
}

func (s *Store) ownerSetKey(ownerID string) string {
	return ownerSetPrefix + ownerID
}
