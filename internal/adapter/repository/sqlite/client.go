package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	// Path is the database file on disk.
	Path string
	// LogLevel is one of "silent", "error", "warn", "info".
	LogLevel string
}

// DSN opens the file with an immediate transaction lock so every write
// transaction takes the single-writer lock up front. Balance mutations read
// and write inside one transaction, so two concurrent withdrawals against
// the same account are serialized rather than both observing the
// pre-withdrawal balance.
func (c Config) DSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate&_foreign_keys=on", c.Path)
}

// Client wraps the GORM handle for the single-file store.
type Client struct {
	db *gorm.DB
}

func NewClient(cfg Config) (*Client, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger:         newLogger(cfg.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&customerRecord{}, &accountRecord{}, &transactionRecord{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite schema: %w", err)
	}

	return &Client{db: db}, nil
}

func (c *Client) DB() *gorm.DB {
	return c.db
}

func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newLogger(level string) gormlogger.Interface {
	var logLevel gormlogger.LogLevel
	switch level {
	case "info":
		logLevel = gormlogger.Info
	case "warn":
		logLevel = gormlogger.Warn
	case "silent":
		logLevel = gormlogger.Silent
	default:
		logLevel = gormlogger.Error
	}

	return gormlogger.Default.LogMode(logLevel)
}
