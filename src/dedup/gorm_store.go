package dedup

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"signaltrader/src/model"
)

// GormStore is the persistent dedup backend. The unique index on the key
// column carries the atomicity: concurrent admissions race on the insert
// and the database rejects all but one.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&model.SeenNotification{}); err != nil {
		return nil, fmt.Errorf("migrate seen_notifications: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Admit(ctx context.Context, key, channel string) error {
	err := s.db.WithContext(ctx).
		Create(&model.SeenNotification{Key: key, Channel: channel}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadySeen
		}
		return fmt.Errorf("admit dedup key: %w", err)
	}
	return nil
}

// OpenStore builds the store selected by config. The memory backend never
// fails; the database backends connect and migrate eagerly so a broken
// DSN surfaces at startup instead of on the first notification.
func OpenStore(config Config) (Store, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.LogLevel(config.GormLogLevel)),
	}

	switch config.Backend {
	case "memory":
		return NewMemoryStore(), nil

	case "sqlite":
		db, err := gorm.Open(sqlite.Open(config.DSN), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("open sqlite dedup store: %w", err)
		}
		logger.WithField("dsn", config.DSN).Info("[dedup] sqlite store connected")
		return NewGormStore(db)

	case "postgres":
		db, err := gorm.Open(postgres.Open(config.DSN), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("open postgres dedup store: %w", err)
		}
		logger.Info("[dedup] postgres store connected")
		return NewGormStore(db)

	default:
		return nil, fmt.Errorf("unknown dedup backend %q", config.Backend)
	}
}
