package stress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDefault(t *testing.T) {
	t.Parallel()

	report, err := Run(context.Background(), DefaultConfig(), nil)
	require.NoError(t, err)

	assert.Equal(t, 8, report.Rounds)
	assert.Positive(t, report.Inserts)
	assert.Positive(t, report.Deletes)
	assert.Positive(t, report.Duplicates)
	assert.GreaterOrEqual(t, report.MaxLevel, 5, "127 entries cannot fit below level 5")
}

func TestRunSeeds(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{2, 3, 42, 1 << 40} {
		cfg := Config{Count: 64, Rounds: 4, Seed: seed, VerifyEvery: 1}
		_, err := Run(context.Background(), cfg, nil)
		require.NoError(t, err, "seed %d", seed)
	}
}

func TestRunDeterministic(t *testing.T) {
	t.Parallel()

	cfg := Config{Count: 50, Rounds: 3, Seed: 7}
	a, err := Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	b, err := Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunSingleEntry(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), Config{Count: 1, Rounds: 4, Seed: 1, VerifyEvery: 1}, nil)
	require.NoError(t, err)
}

func TestRunRejectsEmptyCount(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), Config{Rounds: 1}, nil)
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, DefaultConfig(), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, report.Rounds)
}

func TestDrainString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "root", DrainRoot.String())
	assert.Equal(t, "first", DrainFirst.String())
	assert.Equal(t, "last", DrainLast.String())
	assert.Equal(t, "cursor", DrainCursor.String())
	assert.Equal(t, "unknown", Drain(9).String())
}
