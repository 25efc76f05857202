package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPool_InvalidDSN(t *testing.T) {
	_, err := NewPool(context.Background(), PoolConfig{DSN: "postgres://u:p@localhost:5432/db?pool_max_conns=abc"})
	assert.Error(t, err)
}

func TestNewPool_Unreachable(t *testing.T) {
	_, err := NewPool(context.Background(), PoolConfig{
		DSN:         "postgres://u:p@127.0.0.1:1/db?sslmode=disable&connect_timeout=1",
		MaxConns:    2,
		PingTimeout: 2 * time.Second,
	})
	assert.Error(t, err)
}
