package impl

import (
	"context"
	"testing"

	"lookchat/internal/domain/entity"
	"lookchat/internal/domain/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareOfferAnnouncesProgress(t *testing.T) {
	env := newTestEnv(t)

	frame, err := env.compare.Offer(context.Background(), env.session.ID, entity.Product{ID: 1, Name: "Rain Jacket"})
	require.NoError(t, err)

	msg := findOp(t, frame, render.KindMessage)
	assert.Equal(t, entity.RoleSystem, msg.Role)
	assert.Equal(t, "Rain Jacket added for comparison (1/2).", msg.Text)
	assert.Equal(t, []render.Kind{render.KindMessage}, frameKinds(frame))
}

func TestCompareSecondOfferRendersComparison(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.compare.Offer(context.Background(), env.session.ID, entity.Product{ID: 1, Name: "Rain Jacket"})
	require.NoError(t, err)

	frame, err := env.compare.Offer(context.Background(), env.session.ID, entity.Product{ID: 2, Name: "Wool Beanie"})
	require.NoError(t, err)

	msg := findOp(t, frame, render.KindMessage)
	assert.Equal(t, "Wool Beanie added for comparison (2/2).", msg.Text)

	comparison := findOp(t, frame, render.KindComparison)
	require.Len(t, comparison.Products, 2)
	assert.Equal(t, int64(1), comparison.Products[0].ID, "buffer order preserved")

	assert.Equal(t, 0, env.session.CompareSize(), "tray reset with the render")
}

func TestCompareDuplicateOfferIsSilent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.compare.Offer(context.Background(), env.session.ID, entity.Product{ID: 1, Name: "Rain Jacket"})
	require.NoError(t, err)

	frame, err := env.compare.Offer(context.Background(), env.session.ID, entity.Product{ID: 1, Name: "Rain Jacket"})
	require.NoError(t, err)

	assert.True(t, frame.Empty())
	assert.Equal(t, 1, env.session.CompareSize())
}
