package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/octabyte/bm-rabbitmq-api/db"
	"github.com/octabyte/bm-rabbitmq-api/enums"
	"github.com/octabyte/bm-rabbitmq-api/responses"
)

type RedisStoreTestSuite struct {
	suite.Suite
	ctx    context.Context
	server *miniredis.Miniredis
	store  *Store
}

func (s *RedisStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.server = miniredis.RunT(s.T())

	client, err := NewRedisClient(s.ctx, Config{Addr: s.server.Addr()})
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = client.Close() })

	s.store = NewStore(client, "", 0)
}

func definitions() responses.DefinitionSet {
	return responses.DefinitionSet{
		ServerVersion: "3.13.7",
		Users:         []responses.User{},
		VirtualHosts:  []responses.VirtualHost{{Name: "/", Tags: responses.TagList{"default"}}},
		Permissions:   []responses.Permissions{},
		Parameters:    []responses.RuntimeParameter{},
		Policies: []responses.Policy{
			{VHost: "/", Name: "ttl", Pattern: ".*", ApplyTo: enums.PolicyTargetQueues, Definition: responses.PolicyDefinition{"message-ttl": float64(60000)}},
		},
		Queues:    []responses.QueueDefinition{},
		Exchanges: []responses.ExchangeDefinition{},
		Bindings:  []responses.BindingInfo{},
	}
}

func (s *RedisStoreTestSuite) TestSaveLoadList() {
	defs := definitions()
	s.Require().NoError(s.store.Save(s.ctx, "nightly", defs))
	s.Require().NoError(s.store.Save(s.ctx, "adhoc", defs))

	s.True(s.server.Exists(DefaultPrefix + ":nightly"))
	members, err := s.server.Members(DefaultPrefix)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"nightly", "adhoc"}, members)

	names, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"adhoc", "nightly"}, names)

	loaded, err := s.store.Load(s.ctx, "nightly")
	s.Require().NoError(err)
	s.Equal(defs, loaded)
}

func (s *RedisStoreTestSuite) TestLoadMissing() {
	_, err := s.store.Load(s.ctx, "missing")
	s.ErrorIs(err, db.ErrSnapshotNotFound)
}

func (s *RedisStoreTestSuite) TestDelete() {
	s.Require().NoError(s.store.Save(s.ctx, "nightly", definitions()))
	s.Require().NoError(s.store.Delete(s.ctx, "nightly"))

	names, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)
	s.ErrorIs(s.store.Delete(s.ctx, "nightly"), db.ErrSnapshotNotFound)
}

func (s *RedisStoreTestSuite) TestExpiredSnapshotsArePruned() {
	client, err := NewRedisClient(s.ctx, Config{Addr: s.server.Addr()})
	s.Require().NoError(err)
	defer client.Close()

	store := NewStore(client, "short-lived", time.Minute)
	s.Require().NoError(store.Save(s.ctx, "hourly", definitions()))
	s.Equal(time.Minute, s.server.TTL("short-lived:hourly"))

	s.server.FastForward(2 * time.Minute)

	names, err := store.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)
	s.False(s.server.Exists("short-lived"))
}

func (s *RedisStoreTestSuite) TestInvalidName() {
	s.ErrorIs(s.store.Save(s.ctx, "a:b", definitions()), db.ErrInvalidName)
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func TestNewRedisClientFailsWithoutServer(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := NewRedisClient(ctx, Config{Addr: addr})
	require.Error(t, err)
	assert.Nil(t, client)
}
