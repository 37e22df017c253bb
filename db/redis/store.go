package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/octabyte/bm-rabbitmq-api/db"
	"github.com/octabyte/bm-rabbitmq-api/responses"
	"github.com/octabyte/bm-rabbitmq-api/utils"
	"github.com/octabyte/bm-rabbitmq-api/utils/logger"
)

const DefaultPrefix = "rabbitmq:definitions"

// Store keeps each snapshot as a JSON string under <prefix>:<name> and the
// snapshot names in a set stored at <prefix>.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ db.Store = (*Store)(nil)

// NewStore uses DefaultPrefix when prefix is empty. A zero ttl keeps
// snapshots until they are deleted.
func NewStore(client *redis.Client, prefix string, ttl time.Duration) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix, ttl: ttl}
}

func (s *Store) key(name string) string {
	return s.prefix + ":" + name
}

func (s *Store) Save(ctx context.Context, name string, defs responses.DefinitionSet) error {
	if err := db.ValidateName(name); err != nil {
		return err
	}

	data, err := utils.Marshal(defs)
	if err != nil {
		return fmt.Errorf("redis: encode snapshot %s: %w", name, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if err := Set(ctx, pipe, s.key(name), data, s.ttl); err != nil {
			return err
		}
		return SAdd(ctx, pipe, s.prefix, name)
	})
	if err != nil {
		return fmt.Errorf("redis: save snapshot %s: %w", name, err)
	}

	logger.LogDebug("snapshot stored", zap.String("key", s.key(name)), zap.Int("bytes", len(data)))
	return nil
}

func (s *Store) Load(ctx context.Context, name string) (responses.DefinitionSet, error) {
	if err := db.ValidateName(name); err != nil {
		return responses.DefinitionSet{}, err
	}

	data, err := Get(ctx, s.client, s.key(name))
	if errors.Is(err, redis.Nil) {
		return responses.DefinitionSet{}, fmt.Errorf("%w: %s", db.ErrSnapshotNotFound, name)
	}
	if err != nil {
		return responses.DefinitionSet{}, fmt.Errorf("redis: load snapshot %s: %w", name, err)
	}
	return responses.Decode[responses.DefinitionSet](data)
}

// List drops index entries whose snapshot has expired.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names, err := SMembers(ctx, s.client, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("redis: list snapshots: %w", err)
	}
	if len(names) == 0 {
		return []string{}, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = s.key(name)
	}
	counts := make([]*redis.IntCmd, len(keys))
	if _, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, key := range keys {
			counts[i] = pipe.Exists(ctx, key)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("redis: list snapshots: %w", err)
	}

	live := make([]string, 0, len(names))
	var stale []interface{}
	for i, name := range names {
		if counts[i].Val() > 0 {
			live = append(live, name)
		} else {
			stale = append(stale, name)
		}
	}
	if len(stale) > 0 {
		if err := SRem(ctx, s.client, s.prefix, stale...); err != nil {
			logger.LogWarn("could not prune expired snapshots", zap.Error(err))
		}
	}

	sort.Strings(live)
	return live, nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	if err := db.ValidateName(name); err != nil {
		return err
	}

	removed, err := Del(ctx, s.client, s.key(name))
	if err != nil {
		return fmt.Errorf("redis: delete snapshot %s: %w", name, err)
	}
	if err := SRem(ctx, s.client, s.prefix, name); err != nil {
		return fmt.Errorf("redis: delete snapshot %s: %w", name, err)
	}
	if removed == 0 {
		return fmt.Errorf("%w: %s", db.ErrSnapshotNotFound, name)
	}
	return nil
}
