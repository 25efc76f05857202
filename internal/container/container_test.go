package container

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/account-core/config"
	"github.com/oksasatya/account-core/internal/infrastructure/memory"
	"github.com/oksasatya/account-core/pkg/helpers"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func memoryConfig() *config.Config {
	return &config.Config{
		StoreDriver:          config.StoreDriverMemory,
		JWTSecret:            "s3cret",
		JWTTTL:               time.Hour,
		BcryptCost:           bcrypt.MinCost,
		RabbitMQAccountQueue: "account_events",
	}
}

func TestNew_MemoryStore(t *testing.T) {
	c, err := New(context.Background(), memoryConfig(), quietLogger())
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &memory.AccountRepository{}, c.Accounts)
	assert.Nil(t, c.PGPool)
	assert.Nil(t, c.Redis)
	assert.Nil(t, c.Events)
	require.NotNil(t, c.Service)
	// no typed-nil publisher reaches the service
	assert.True(t, c.Service.Events == nil)
	assert.Equal(t, bcrypt.MinCost, c.Hasher.Cost)
}

func TestNew_MissingSecret(t *testing.T) {
	cfg := memoryConfig()
	cfg.JWTSecret = ""
	_, err := New(context.Background(), cfg, quietLogger())
	assert.ErrorIs(t, err, helpers.ErrMissingSecret)
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StoreDriver = "mongo"
	_, err := New(context.Background(), cfg, quietLogger())
	assert.Error(t, err)
}

func TestNew_UnreachableRedisDisablesLimiting(t *testing.T) {
	cfg := memoryConfig()
	cfg.RedisAddr = "127.0.0.1:1"
	c, err := New(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	defer c.Close()
	assert.Nil(t, c.Redis)
}
