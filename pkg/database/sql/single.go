package sql

import (
	"context"
	"fmt"

	"github.com/fareltaza35/atscore/pkg/errors"
	"gorm.io/gorm"
)

// Single wraps a single *gorm.DB connection as a SQL, for drivers (postgres,
// mysql, sqlite) whose adapter New functions hand back a raw *gorm.DB rather
// than already implementing SQL themselves.
type Single struct {
	db *gorm.DB
}

// NewSingle wraps db as a SQL with no sharding support.
func NewSingle(db *gorm.DB) *Single {
	return &Single{db: db}
}

// Get returns the wrapped connection, bound to ctx.
func (s *Single) Get(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// GetShard always fails: a single connection has no shard map.
func (s *Single) GetShard(_ context.Context, key string) (*gorm.DB, error) {
	return nil, errors.NotFound(fmt.Sprintf("sharding not supported by single connection, key: %s", key), nil)
}

// Close releases the underlying connection pool.
func (s *Single) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
