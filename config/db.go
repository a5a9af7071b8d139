package config

import (
	"context"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is a global variable to hold the database connection
var DB *gorm.DB

// Connect opens the PostgreSQL connection from a DSN.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Getenv returns the environment value for key or fallback when unset.
func Getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// DBTimeout bounds every datastore call. A query exceeding it fails the
// request the same way any other database error does.
func DBTimeout() time.Duration {
	secs, err := strconv.Atoi(Getenv("DB_TIMEOUT", "5"))
	if err != nil || secs <= 0 {
		secs = 5
	}
	return time.Duration(secs) * time.Second
}

// QueryContext derives a bounded context for one datastore call.
func QueryContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, DBTimeout())
}
