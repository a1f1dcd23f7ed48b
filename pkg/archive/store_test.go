package archive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSaveBatchAndRecent(t *testing.T) {
	_, s := setupTestStore(t)
	ctx := context.Background()

	created := time.Unix(1700000000, 0)
	first, err := s.SaveBatch(ctx, Batch{Source: "dogs.csv", MaxChars: 280, CreatedAt: created, Tweets: []string{"woof.", "bark!"}})
	require.NoError(t, err)
	second, err := s.SaveBatch(ctx, Batch{Source: "cats.csv", MaxChars: 140, Tweets: []string{"meow?"}})
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	tweets, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tweets, 3)

	require.Equal(t, "meow?", tweets[0].Body)
	require.Equal(t, "cats.csv", tweets[0].Source)
	require.Equal(t, second, tweets[0].BatchId)

	require.Equal(t, "bark!", tweets[1].Body)
	require.Equal(t, 1, tweets[1].Position)
	require.Equal(t, "woof.", tweets[2].Body)
	require.Equal(t, first, tweets[2].BatchId)
	require.True(t, tweets[2].CreatedAt.Equal(created))

	limited, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestStats(t *testing.T) {
	_, s := setupTestStore(t)
	ctx := context.Background()

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, Stats{}, st)
	require.Zero(t, st.AverageLength())

	_, err = s.SaveBatch(ctx, Batch{Source: "a", Tweets: []string{"ab.", "abcde."}})
	require.NoError(t, err)
	_, err = s.SaveBatch(ctx, Batch{Source: "b"})
	require.NoError(t, err)

	st, err = s.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, Stats{Batches: 2, Tweets: 2, TotalLength: 9}, st)
	require.InDelta(t, 4.5, st.AverageLength(), 1e-9)
}

func TestSaveBatchCancelledContext(t *testing.T) {
	db, s := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SaveBatch(ctx, Batch{Source: "x", Tweets: []string{"never."}})
	require.Error(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM tweets").Scan(&count))
	require.Zero(t, count)
}
