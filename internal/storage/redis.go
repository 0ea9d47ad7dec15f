package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisKeyPrefix = "directory:"

// RedisStore keeps collections as JSON blobs in Redis.
type RedisStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisStore(client *redis.Client, log *logrus.Logger) *RedisStore {
	return &RedisStore{client: client, log: log}
}

func (s *RedisStore) Load(key string, out interface{}) bool {
	data, err := s.client.Get(context.Background(), redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Failed to read stored value for key %q: %+v", key, err)
		}
		return false
	}

	if err := decodeInto(data, out); err != nil {
		s.log.Warnf("Failed to decode stored value for key %q: %+v", key, err)
		return false
	}

	return true
}

func (s *RedisStore) Save(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warnf("Failed to marshal value for key %q: %+v", key, err)
		return
	}

	if err := s.client.Set(context.Background(), redisKeyPrefix+key, data, 0).Err(); err != nil {
		s.log.Warnf("Failed to write value for key %q: %+v", key, err)
	}
}
