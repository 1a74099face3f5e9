package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Config carries the connection target and the pool limits for Open.
// Pool fields that are zero or negative fall back to the driver defaults.
type Config struct {
	User string
	Pass string
	Host string
	Port string
	Name string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to MySQL, applies the pool limits and verifies the
// connection with a short ping.
func Open(cfg Config) (*sql.DB, error) {
	auth := cfg.User
	if cfg.Pass != "" {
		auth = cfg.User + ":" + cfg.Pass
	}
	// parseTime=true -> DATE/DATETIME -> time.Time | loc=UTC keeps the
	// stay-interval math in the pricing engine timezone-free
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, cfg.Host, cfg.Port, cfg.Name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
