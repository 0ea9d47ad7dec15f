package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvRecord is one persisted collection. The directory state is schemaless
// key-value JSON, so a single table holds every collection.
type kvRecord struct {
	Key       string    `gorm:"primaryKey;type:varchar(100)"`
	Value     []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (kvRecord) TableName() string {
	return "kv_records"
}

// PostgresStore keeps collections as JSONB rows in postgres via gorm.
type PostgresStore struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewPostgresStore(db *gorm.DB, log *logrus.Logger) (*PostgresStore, error) {
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_records table: %w", err)
	}

	return &PostgresStore{db: db, log: log}, nil
}

func (s *PostgresStore) Load(key string, out interface{}) bool {
	var record kvRecord
	if err := s.db.First(&record, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warnf("Failed to read stored value for key %q: %+v", key, err)
		}
		return false
	}

	if err := decodeInto(record.Value, out); err != nil {
		s.log.Warnf("Failed to decode stored value for key %q: %+v", key, err)
		return false
	}

	return true
}

func (s *PostgresStore) Save(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warnf("Failed to marshal value for key %q: %+v", key, err)
		return
	}

	record := kvRecord{Key: key, Value: data}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		s.log.Warnf("Failed to write value for key %q: %+v", key, err)
	}
}
