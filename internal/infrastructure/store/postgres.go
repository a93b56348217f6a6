package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one named collection persisted as a jsonb row.
type Record struct {
	Key       string    `gorm:"type:varchar(100);primaryKey" json:"key"`
	Value     []byte    `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Record) TableName() string {
	return "kv_records"
}

// PostgresKV keeps the collections in a single kv_records table.
type PostgresKV struct {
	db *gorm.DB
}

func NewPostgresKV(db *gorm.DB) (*PostgresKV, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate kv_records: %w", err)
	}
	return &PostgresKV{db: db}, nil
}

func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec Record
	err := p.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("postgres get %s: %w", key, err)
	}
	return rec.Value, true, nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	rec := Record{Key: key, Value: value}
	err := p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("postgres set %s: %w", key, err)
	}
	return nil
}
