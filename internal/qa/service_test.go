package qa

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Items(t *testing.T) {
	svc := NewService(Seed(), 0)

	items, err := svc.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "General", items[0].Category)
}

func TestService_Items_ReturnsCopy(t *testing.T) {
	svc := NewService(Seed(), 0)
	ctx := context.Background()

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	items[0].Question = "mutated?"

	again, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated?", again[0].Question)
}

func TestService_Ask_EchoesQuestion(t *testing.T) {
	svc := NewService(nil, 0)

	resp, err := svc.Ask(context.Background(), "What is the vacation policy?")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Answer,
		`Here's a response to your question: "What is the vacation policy?"`))
	assert.Contains(t, resp.Answer, "20 days of paid vacation")
	assert.InDelta(t, 0.95, resp.Confidence, 1e-9)
	require.Len(t, resp.SourceDocuments, 1)
	assert.Equal(t, "Company Handbook", resp.SourceDocuments[0].Title)
}

func TestService_Ask_DoesNotMutateCanned(t *testing.T) {
	svc := NewService(nil, 0)
	ctx := context.Background()

	first, err := svc.Ask(ctx, "one")
	require.NoError(t, err)
	first.SourceDocuments[0].Title = "mutated"

	second, err := svc.Ask(ctx, "two")
	require.NoError(t, err)
	assert.Equal(t, "Company Handbook", second.SourceDocuments[0].Title)
}

func TestService_Items_HonorsCancellation(t *testing.T) {
	svc := NewService(Seed(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Items(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
