// Package sqlite persists key-value documents in a local SQLite file.
// This is the synchronous same-process medium used by default: every
// operation completes within the call, no external service involved.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vitalog/vitalog/internal/storage"
)

// Record is one stored key-value pair.
type Record struct {
	ID        uint      `gorm:"primaryKey"`
	Key       string    `gorm:"uniqueIndex;size:100"`
	Value     string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Record) TableName() string {
	return "records"
}

// Provider implements storage.Adapter over a gorm-managed SQLite file.
type Provider struct {
	db *gorm.DB
}

// New opens (or creates) the SQLite database at path and migrates the
// records table.
func New(path string) (*Provider, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage database: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate storage database: %w", err)
	}

	log.Printf("SQLite storage initialized at %s", path)

	return &Provider{db: db}, nil
}

func (p *Provider) Get(ctx context.Context, key string) (string, error) {
	var record Record
	err := p.db.WithContext(ctx).Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return record.Value, nil
}

func (p *Provider) Set(ctx context.Context, key, value string) error {
	var record Record
	result := p.db.WithContext(ctx).Where("key = ?", key).First(&record)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		record = Record{Key: key, Value: value}
		return p.db.WithContext(ctx).Create(&record).Error
	} else if result.Error != nil {
		return result.Error
	}

	record.Value = value
	return p.db.WithContext(ctx).Save(&record).Error
}

func (p *Provider) Remove(ctx context.Context, key string) error {
	return p.db.WithContext(ctx).Where("key = ?", key).Delete(&Record{}).Error
}

func (p *Provider) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (p *Provider) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
