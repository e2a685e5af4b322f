package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one collection blob in the records table.
type Record struct {
	Key       string    `gorm:"column:key;type:varchar(128);primaryKey"`
	Blob      string    `gorm:"column:blob;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (Record) TableName() string {
	return "records"
}

// PostgresStore keeps collection blobs in a single key/blob table.
type PostgresStore struct {
	db     *gorm.DB
	log    *logrus.Logger
	prefix string
	quota  int
}

func NewPostgresStore(db *gorm.DB, log *logrus.Logger, prefix string, quota int) *PostgresStore {
	return &PostgresStore{
		db:     db,
		log:    log,
		prefix: prefix,
		quota:  quota,
	}
}

// Migrate creates the records table when it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("migrate records table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Read(ctx context.Context, key string) (string, bool, error) {
	var record Record
	err := s.db.WithContext(ctx).Where("key = ?", s.prefix+key).Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		s.log.Warnf("Failed to read %s from PostgreSQL: %+v", key, err)
		return "", false, fmt.Errorf("select record %s: %w", key, err)
	}

	return record.Blob, true, nil
}

func (s *PostgresStore) Write(ctx context.Context, key string, blob string) error {
	if err := checkQuota(key, blob, s.quota); err != nil {
		return err
	}

	record := Record{
		Key:       s.prefix + key,
		Blob:      blob,
		UpdatedAt: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"blob", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		s.log.Warnf("Failed to write %s to PostgreSQL: %+v", key, err)
		return fmt.Errorf("upsert record %s: %w", key, err)
	}

	return nil
}
