package impl

import (
	"context"
	"testing"

	"lookchat/internal/domain/entity"
	"lookchat/internal/domain/render"
	"lookchat/internal/domain/repository"
	"lookchat/internal/domain/service"
	"lookchat/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitRejectsWhileTurnInFlight(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.session.BeginTurn())
	defer env.session.EndTurn()

	_, err := env.conversation.Submit(context.Background(), env.session.ID, "hello")
	assert.ErrorIs(t, err, entity.ErrTurnInFlight)
}

func TestSubmitUnknownSession(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.conversation.Submit(context.Background(), entity.NewChatSession(entity.DefaultCompareSlots).ID, "hello")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSubmitTransportFailureReleasesLock(t *testing.T) {
	env := newTestEnv(t)
	env.assistant.EXPECT().Chat(mock.Anything, "hello").Return(nil, errors.New("connection refused"))

	frame, err := env.conversation.Submit(context.Background(), env.session.ID, "hello")
	require.NoError(t, err, "a transport failure is recoverable, not an API error")

	assert.Equal(t, entity.PhaseIdle, env.session.Phase())

	var lastMessage render.Op
	for _, op := range frame.Ops {
		if op.Kind == render.KindMessage {
			lastMessage = op
		}
	}
	assert.Equal(t, entity.RoleSystem, lastMessage.Role)
	assert.Equal(t, "I couldn't reach the assistant. Please try again.", lastMessage.Text)

	last := frame.Ops[len(frame.Ops)-1]
	assert.Equal(t, render.KindInput, last.Kind)
	assert.False(t, last.On, "input unlocked after failure")
}

func TestShowCartSummaryFailureReleasesLock(t *testing.T) {
	env := newTestEnv(t)

	env.assistant.EXPECT().
		Chat(mock.Anything, "show my cart").
		Return(&service.ChatReply{Action: service.ActionShowCart}, nil)
	env.assistant.EXPECT().
		CartSummary(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	frame, err := env.conversation.Submit(context.Background(), env.session.ID, "show my cart")
	require.NoError(t, err)

	assert.Equal(t, entity.PhaseIdle, env.session.Phase())
	last := frame.Ops[len(frame.Ops)-1]
	assert.Equal(t, render.KindInput, last.Kind)
	assert.False(t, last.On)
}

func TestStoreActionUnknownKind(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.conversation.StoreAction(context.Background(), env.session.ID, &usecase.StoreActionInput{
		Kind: usecase.StoreActionKind("teleport"),
	})
	assert.Error(t, err)
}
