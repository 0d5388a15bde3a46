package db

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNoStore means the backing store does not exist or cannot be reached.
var ErrNoStore = errors.New("store not available")

// Connect opens a read-only handle on the store named by dsn.
// A postgres:// or postgresql:// DSN selects Postgres, anything else is
// treated as a SQLite file path. A missing SQLite file is never created.
func Connect(dsn string, debug bool) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:                 newLogger(debug),
		SkipDefaultTransaction: true,
	}

	if IsPostgres(dsn) {
		gdb, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoStore, err)
		}
		singleConn(gdb)
		if err := gdb.Exec("SET SESSION CHARACTERISTICS AS TRANSACTION READ ONLY").Error; err != nil {
			Close(gdb)
			return nil, fmt.Errorf("%w: %v", ErrNoStore, err)
		}
		return gdb, nil
	}

	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrNoStore, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrNoStore, err)
	}

	gdb, err := gorm.Open(sqlite.Open(sqliteReadOnly(dsn)), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoStore, err)
	}
	singleConn(gdb)
	return gdb, nil
}

// Close releases the pool behind gdb.
func Close(gdb *gorm.DB) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("db close error: %v\n", err)
	}
}

// singleConn pins the pool to one connection so session settings and
// the request's queries share it.
func singleConn(gdb *gorm.DB) {
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
}

// IsPostgres reports whether dsn names a Postgres server rather than a file.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// sqliteReadOnly forces mode=ro, replacing any mode the DSN carries.
func sqliteReadOnly(dsn string) string {
	path, query, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	params, _ := url.ParseQuery(query)
	if params == nil {
		params = url.Values{}
	}
	params.Set("mode", "ro")
	return "file:" + path + "?" + params.Encode()
}

func newLogger(debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return logger.New(log.Default(), logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
