package storage

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// MemoryStore keeps collections in a process-local map. It is the default
// substitute for tests and for running without any persistence backend.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
	log  *logrus.Logger
}

func NewMemoryStore(log *logrus.Logger) *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
		log:  log,
	}
}

func (s *MemoryStore) Load(key string, out interface{}) bool {
	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return false
	}

	if err := decodeInto(data, out); err != nil {
		s.log.Warnf("Failed to decode stored value for key %q: %+v", key, err)
		return false
	}

	return true
}

func (s *MemoryStore) Save(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warnf("Failed to marshal value for key %q: %+v", key, err)
		return
	}

	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
}
