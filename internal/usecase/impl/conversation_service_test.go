package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lookchat/config"
	"lookchat/internal/domain/entity"
	"lookchat/internal/domain/render"
	"lookchat/internal/domain/service"
	"lookchat/internal/infra/memory"
	mocks "lookchat/internal/mocks/service"
	"lookchat/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store        *memory.SessionStore
	assistant    *mocks.MockAssistantService
	conversation usecase.ConversationUsecase
	cart         usecase.CartUsecase
	compare      usecase.CompareUsecase
	session      *entity.ChatSession
}

// newTestEnv wires the use cases against an in-memory store and a mocked
// assistant, with the typing floor disabled so turns complete immediately.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.Chat.CompareSlots = entity.DefaultCompareSlots
	cfg.Chat.DefaultQuickReplies = []string{"Show 5 closest stores", "Only jackets", "Under $100"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewSessionStore()
	assistant := mocks.NewMockAssistantService(t)

	cartUC := NewCartService(store, assistant, logger)
	conversationUC := NewConversationService(store, assistant, cartUC, cfg, logger)
	compareUC := NewCompareService(store)

	sess := entity.NewChatSession(cfg.Chat.CompareSlots)
	require.NoError(t, store.Save(context.Background(), sess))

	return &testEnv{
		store:        store,
		assistant:    assistant,
		conversation: conversationUC,
		cart:         cartUC,
		compare:      compareUC,
		session:      sess,
	}
}

func frameKinds(frame *render.Frame) []render.Kind {
	kinds := make([]render.Kind, 0, len(frame.Ops))
	for _, op := range frame.Ops {
		kinds = append(kinds, op.Kind)
	}

	return kinds
}

func findOp(t *testing.T, frame *render.Frame, kind render.Kind) render.Op {
	t.Helper()
	for _, op := range frame.Ops {
		if op.Kind == kind {
			return op
		}
	}
	t.Fatalf("frame has no %q op: %v", kind, frameKinds(frame))

	return render.Op{}
}

func TestStartSessionGreetsAndOffersDefaults(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.conversation.StartSession(context.Background())
	require.NoError(t, err)

	sess, err := env.store.FindByID(context.Background(), out.SessionID)
	require.NoError(t, err)
	assert.Equal(t, entity.PhaseIdle, sess.Phase())

	msg := findOp(t, out.Frame, render.KindMessage)
	assert.Equal(t, entity.RoleBot, msg.Role)
	assert.NotEmpty(t, msg.Text)

	qr := findOp(t, out.Frame, render.KindQuickReplies)
	assert.Equal(t, []string{"Show 5 closest stores", "Only jackets", "Under $100"}, qr.Labels)
	assert.Equal(t, qr.Labels, sess.QuickReplies())
}

func TestSubmitRendersProductTurnInOrder(t *testing.T) {
	env := newTestEnv(t)
	env.session.SetQuickReplies([]string{"Under $100"})

	reply := &service.ChatReply{
		Reply:        "Here are some jackets.",
		Products:     []entity.Product{{ID: 1, Name: "Rain Jacket"}},
		QuickReplies: []string{"Only jackets"},
	}
	env.assistant.EXPECT().Chat(mock.Anything, "show me jackets").Return(reply, nil)

	frame, err := env.conversation.Submit(context.Background(), env.session.ID, "show me jackets")
	require.NoError(t, err)

	assert.Equal(t, []render.Kind{
		render.KindQuickReplies, // stale replies cleared first
		render.KindMessage,      // echoed user message
		render.KindInput,        // locked
		render.KindTyping,       // shown
		render.KindTyping,       // hidden
		render.KindMessage,      // bot reply
		render.KindCarousel,
		render.KindQuickReplies, // fresh replies
		render.KindInput,        // unlocked
	}, frameKinds(frame))

	carousel := findOp(t, frame, render.KindCarousel)
	assert.Equal(t, []render.CardAction{render.CardActionCompare, render.CardActionAddToCart}, carousel.Actions)

	assert.Equal(t, entity.PhaseIdle, env.session.Phase(), "turn lock released")
	assert.Equal(t, []string{"Only jackets"}, env.session.QuickReplies())

	timeline := env.session.Timeline()
	require.Len(t, timeline, 2)
	assert.Equal(t, entity.RoleUser, timeline[0].Role)
	assert.Equal(t, entity.RoleBot, timeline[1].Role)
}

func TestSubmitEmptyTextIsSilentNoOp(t *testing.T) {
	env := newTestEnv(t)

	frame, err := env.conversation.Submit(context.Background(), env.session.ID, "   \n\t ")
	require.NoError(t, err)

	assert.True(t, frame.Empty())
	assert.Empty(t, env.session.Timeline())
}

func TestSubmitStoresForceFollowUpReplies(t *testing.T) {
	env := newTestEnv(t)

	reply := &service.ChatReply{
		Reply: "Here are stores near you.",
		Stores: []entity.Store{
			{ID: 7, Name: "Downtown", Latitude: 40.71, Longitude: -74.0},
		},
		UserLocation: &entity.Coordinates{Latitude: 40.7, Longitude: -74.0},
		QuickReplies: []string{"Something else"},
	}
	env.assistant.EXPECT().Chat(mock.Anything, "stores near me").Return(reply, nil)

	frame, err := env.conversation.Submit(context.Background(), env.session.ID, "stores near me")
	require.NoError(t, err)

	mapOp := findOp(t, frame, render.KindMap)
	require.Len(t, mapOp.Stores, 1)
	assert.Greater(t, mapOp.Stores[0].DistanceKm, 0.0, "distance filled from user location")
	require.NotNil(t, mapOp.Origin)

	// The fixed follow-up set wins over whatever the response suggested.
	assert.Equal(t, storeQuickReplies, env.session.QuickReplies())

	loc := env.session.Location()
	require.NotNil(t, loc)
	assert.InDelta(t, 40.7, loc.Latitude, 1e-9)
}

func TestSubmitStoreMentionWithoutStores(t *testing.T) {
	env := newTestEnv(t)

	reply := &service.ChatReply{Reply: "I found one store for you."}
	env.assistant.EXPECT().Chat(mock.Anything, "store details 9").Return(reply, nil)

	frame, err := env.conversation.Submit(context.Background(), env.session.ID, "store details 9")
	require.NoError(t, err)

	var texts []string
	for _, op := range frame.Ops {
		if op.Kind == render.KindMessage && op.Role == entity.RoleSystem {
			texts = append(texts, op.Text)
		}
	}
	assert.Contains(t, texts, "Map view isn't available for this result.")
}

func TestSubmitShowCartShortCircuits(t *testing.T) {
	env := newTestEnv(t)
	env.session.AddToCart(entity.Product{ID: 1, Name: "Rain Jacket"})

	chatReply := &service.ChatReply{
		Action: service.ActionShowCart,
		// Any other fields must be ignored on this branch.
		Products:     []entity.Product{{ID: 99, Name: "ignored"}},
		QuickReplies: []string{"ignored"},
	}
	env.assistant.EXPECT().Chat(mock.Anything, "show my cart").Return(chatReply, nil)
	env.assistant.EXPECT().
		CartSummary(mock.Anything, env.session.CartSnapshot()).
		Return(&service.CartSummary{
			Reply: "You have 1 item.",
			Cart:  env.session.CartSnapshot(),
		}, nil)

	frame, err := env.conversation.Submit(context.Background(), env.session.ID, "show my cart")
	require.NoError(t, err)

	carousel := findOp(t, frame, render.KindCarousel)
	assert.Equal(t, []render.CardAction{render.CardActionRemove}, carousel.Actions)
	require.Len(t, carousel.Products, 1)
	assert.Equal(t, int64(1), carousel.Products[0].ID)

	assert.Empty(t, env.session.QuickReplies())
	assert.Equal(t, entity.PhaseIdle, env.session.Phase())
}

func TestTapQuickReplyVanishedLabelIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	// No quick replies displayed: a stale tap arrives after they vanished.

	frame, err := env.conversation.TapQuickReply(context.Background(), env.session.ID, "Checkout")
	require.NoError(t, err)
	assert.True(t, frame.Empty())
}

func TestTapQuickReplyDispatchesCheckout(t *testing.T) {
	env := newTestEnv(t)
	env.session.AddToCart(entity.Product{ID: 1, Name: "Rain Jacket"})
	env.session.SetQuickReplies([]string{quickReplyCheckout, quickReplyShowMore})

	env.assistant.EXPECT().
		Checkout(mock.Anything, mock.Anything).
		Return(&service.OrderConfirmation{OrderID: "ord-42"}, nil)

	frame, err := env.conversation.TapQuickReply(context.Background(), env.session.ID, quickReplyCheckout)
	require.NoError(t, err)

	msg := findOp(t, frame, render.KindMessage)
	assert.Contains(t, msg.Text, "ord-42")
	assert.Equal(t, 0, env.session.CartLen())
}

func TestTapQuickReplyFallsBackToSendPath(t *testing.T) {
	env := newTestEnv(t)
	env.session.SetQuickReplies([]string{"Only jackets"})

	env.assistant.EXPECT().
		Chat(mock.Anything, "Only jackets").
		Return(&service.ChatReply{Reply: "Filtering to jackets."}, nil)

	frame, err := env.conversation.TapQuickReply(context.Background(), env.session.ID, "Only jackets")
	require.NoError(t, err)
	assert.False(t, frame.Empty())
}

func TestStoreActionSearchRoutesCommand(t *testing.T) {
	env := newTestEnv(t)

	env.assistant.EXPECT().
		Chat(mock.Anything, "search store 7").
		Return(&service.ChatReply{Reply: "Products at Downtown."}, nil)

	_, err := env.conversation.StoreAction(context.Background(), env.session.ID, &usecase.StoreActionInput{
		Kind:  usecase.StoreActionSearch,
		Store: entity.Store{ID: 7},
	})
	require.NoError(t, err)
}

func TestStoreActionDetailsRoutesCommand(t *testing.T) {
	env := newTestEnv(t)

	env.assistant.EXPECT().
		Chat(mock.Anything, "store details 7").
		Return(&service.ChatReply{Reply: "Downtown, open 9-5."}, nil)

	_, err := env.conversation.StoreAction(context.Background(), env.session.ID, &usecase.StoreActionInput{
		Kind:  usecase.StoreActionDetails,
		Store: entity.Store{ID: 7},
	})
	require.NoError(t, err)
}

func TestStoreActionDirectionsWithoutLocation(t *testing.T) {
	env := newTestEnv(t)

	frame, err := env.conversation.StoreAction(context.Background(), env.session.ID, &usecase.StoreActionInput{
		Kind:  usecase.StoreActionDirections,
		Store: entity.Store{ID: 7, Latitude: 40.71, Longitude: -74.0},
	})
	require.NoError(t, err)

	alert := findOp(t, frame, render.KindAlert)
	assert.Equal(t, "I don't have your location to give you directions.", alert.Text)
}

func TestStoreActionDirectionsWithLocation(t *testing.T) {
	env := newTestEnv(t)
	env.session.SetLocation(entity.Coordinates{Latitude: 40.7, Longitude: -74.0})

	frame, err := env.conversation.StoreAction(context.Background(), env.session.ID, &usecase.StoreActionInput{
		Kind:  usecase.StoreActionDirections,
		Store: entity.Store{ID: 7, Latitude: 40.71, Longitude: -74.0},
	})
	require.NoError(t, err)

	directions := findOp(t, frame, render.KindDirections)
	assert.Contains(t, directions.URL, "google.com/maps/dir")
}

func TestSubmitConcurrentTurnsCollapseToOne(t *testing.T) {
	env := newTestEnv(t)

	started := make(chan struct{})
	release := make(chan struct{})
	env.assistant.EXPECT().
		Chat(mock.Anything, "slow question").
		RunAndReturn(func(context.Context, string) (*service.ChatReply, error) {
			close(started)
			<-release

			return &service.ChatReply{Reply: "done"}, nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := env.conversation.Submit(context.Background(), env.session.ID, "slow question")
		done <- err
	}()

	<-started
	_, err := env.conversation.Submit(context.Background(), env.session.ID, "second question")
	assert.ErrorIs(t, err, entity.ErrTurnInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, entity.PhaseIdle, env.session.Phase())
}
