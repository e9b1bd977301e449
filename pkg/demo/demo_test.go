package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchmate/meetslots/pkg/logger"
	"github.com/pitchmate/meetslots/pkg/memstore"
	"github.com/pitchmate/meetslots/pkg/models"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(logger.New("error"))

	require.NoError(t, Seed(ctx, store))

	requests := store.Requests(ctx)
	require.Len(t, requests, 2)
	assert.Equal(t, 1, requests[0].ID)
	assert.Equal(t, "Investor A", requests[0].From)
	assert.Equal(t, "2025-08-25", requests[0].Date)
	assert.Equal(t, "10:00 AM", requests[0].Time)
	assert.Equal(t, models.StatusPending, requests[0].Status)
	assert.Equal(t, 2, requests[1].ID)
	assert.Equal(t, "Investor B", requests[1].From)
}
