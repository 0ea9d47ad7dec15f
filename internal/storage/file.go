package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// FileStore writes each collection to its own <key>.json file under a base
// directory. This is the default backend for a single local instance.
type FileStore struct {
	basePath string
	log      *logrus.Logger
}

func NewFileStore(basePath string, log *logrus.Logger) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FileStore{basePath: basePath, log: log}, nil
}

func (s *FileStore) Load(key string, out interface{}) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
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

func (s *FileStore) Save(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warnf("Failed to marshal value for key %q: %+v", key, err)
		return
	}

	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		s.log.Warnf("Failed to write value for key %q: %+v", key, err)
	}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.basePath, key+".json")
}
