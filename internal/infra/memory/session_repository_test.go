package memory

import (
	"context"
	"testing"

	"lookchat/internal/domain/entity"
	"lookchat/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := entity.NewChatSession(entity.DefaultCompareSlots)
	require.NoError(t, store.Save(ctx, sess))
	assert.Equal(t, 1, store.Len())

	found, err := store.FindByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, found, "store hands out the live session")

	require.NoError(t, store.Delete(ctx, sess.ID))
	assert.Equal(t, 0, store.Len())
}

func TestSessionStoreMisses(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	_, err := store.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	err = store.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}
