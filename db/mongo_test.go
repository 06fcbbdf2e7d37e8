package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-nest/config"
)

func TestInitFailureIsReturnedOnEveryCall(t *testing.T) {
	ctx := context.Background()
	bad := config.MongoConfig{URI: "invalid://localhost", Database: "blognest", ConnectTimeoutSeconds: 1}

	first := Init(ctx, bad)
	require.Error(t, first)

	second := Init(ctx, config.MongoConfig{URI: "mongodb://localhost:27017", Database: "blognest"})
	assert.Equal(t, first, second)

	assert.Nil(t, Database())
	assert.ErrorIs(t, Ping(ctx), mongo.ErrClientDisconnected)
	assert.NoError(t, Disconnect(ctx))
}
