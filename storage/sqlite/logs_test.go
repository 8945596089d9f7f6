package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amharies/BIONARY--CHATBOT/core"
)

func TestAddLogAssignsIdentity(t *testing.T) {
	_, logRepo := setupRepos(t)
	ctx := context.Background()

	entry := &core.QueryLog{
		Question:  "free robotics events in october 2024",
		Answer:    "There is one free robotics event in October 2024.",
		QueryText: "SELECT ...",
	}

	added, err := logRepo.AddLog(ctx, entry)
	require.NoError(t, err)
	assert.NotZero(t, added.Id)
	assert.False(t, added.AskedAt.IsZero())
}

func TestRecentLogs_NewestFirst(t *testing.T) {
	_, logRepo := setupRepos(t)
	ctx := context.Background()

	now := time.Now().UTC()
	entries := []*core.QueryLog{
		{Question: "first", AskedAt: now.Add(-2 * time.Hour)},
		{Question: "second", AskedAt: now.Add(-1 * time.Hour)},
		{Question: "third", AskedAt: now},
	}
	for _, e := range entries {
		_, err := logRepo.AddLog(ctx, e)
		require.NoError(t, err)
	}

	recent, err := logRepo.RecentLogs(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Question)
	assert.Equal(t, "second", recent[1].Question)
}
