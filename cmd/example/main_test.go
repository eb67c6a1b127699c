package main

import (
	"context"
	"testing"

	"github.com/logistics-id/simplemongo/common"
	"github.com/logistics-id/simplemongo/ds/mongo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ common.Repository[User] = (*mongo.Store[User, *User])(nil)

func TestUserIdentity(t *testing.T) {
	u := common.NewObject[User]("paolo")
	assert.Equal(t, "paolo", u.Name)

	_, err := mongo.ParseID(u.ID())
	assert.NoError(t, err)

	u.SetID("x")
	assert.Equal(t, "x", u.UID)
}

func TestOptionsFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("MONGODB_DATABASE", "db")
	t.Setenv("MONGODB_COLLECTION", "collezione")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--database", "other", "--username", "paolo", "--password", "1234"}))

	opts, err := options(cmd)
	require.NoError(t, err)
	assert.Equal(t, "mongodb://127.0.0.1:27017", opts.URI)
	assert.Equal(t, "other", opts.DatabaseName)
	assert.Equal(t, "collezione", opts.CollectionPath)
	require.NotNil(t, opts.Credentials)
	assert.Equal(t, "paolo", opts.Credentials.Username)
	assert.Equal(t, "1234", opts.Credentials.Password)
}

func TestOptionsPasswordFlagKeepsEnvironmentUsername(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("MONGODB_DATABASE", "db")
	t.Setenv("MONGODB_COLLECTION", "collezione")
	t.Setenv("MONGODB_AUTH_USERNAME", "paolo")
	t.Setenv("MONGODB_AUTH_PASSWORD", "old")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--password", "1234"}))

	opts, err := options(cmd)
	require.NoError(t, err)
	require.NotNil(t, opts.Credentials)
	assert.Equal(t, "paolo", opts.Credentials.Username)
	assert.Equal(t, "1234", opts.Credentials.Password)
}

func TestOptionsUsernameFlagKeepsEnvironmentPassword(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("MONGODB_DATABASE", "db")
	t.Setenv("MONGODB_COLLECTION", "collezione")
	t.Setenv("MONGODB_AUTH_USERNAME", "paolo")
	t.Setenv("MONGODB_AUTH_PASSWORD", "1234")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--username", "giovanni"}))

	opts, err := options(cmd)
	require.NoError(t, err)
	require.NotNil(t, opts.Credentials)
	assert.Equal(t, "giovanni", opts.Credentials.Username)
	assert.Equal(t, "1234", opts.Credentials.Password)
}

func TestMalformedEnvironmentIsReported(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("MONGODB_DATABASE", "db")
	t.Setenv("MONGODB_COLLECTION", "collezione")
	t.Setenv("MONGODB_CTX_TIMEOUT", "ten")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	_, err := options(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGODB_")

	called := false
	err = withStore(cmd, func(context.Context, *mongo.Store[User, *User]) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
