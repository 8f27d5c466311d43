package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planets-explorer/internal/shared/config"
)

func TestConnect_Disabled(t *testing.T) {
	client, err := Connect(context.Background(), config.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, client)
	assert.Equal(t, "disabled", client.Status(context.Background()))
	assert.NoError(t, client.Close())
}

func TestConnect_BadURL(t *testing.T) {
	_, err := Connect(context.Background(), config.RedisConfig{Enabled: true, URL: "not-a-url://"})
	assert.Error(t, err)
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: "1"})
	assert.Error(t, err)
}
