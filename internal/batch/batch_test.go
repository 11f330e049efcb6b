package batch_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251019-go-pkg-braces/internal/batch"
	"github.com/lwmacct/251019-go-pkg-braces/pkg/braces"
)

func TestExpand_PreservesOrder(t *testing.T) {
	patterns := make([]string, 50)
	for i := range patterns {
		patterns[i] = fmt.Sprintf("p%d-{a,b}", i)
	}

	results, err := batch.Expand(context.Background(), patterns, batch.Options{Jobs: 8})
	require.NoError(t, err)
	require.Len(t, results, len(patterns))

	for i, r := range results {
		assert.Equal(t, patterns[i], r.Pattern)
		require.NoError(t, r.Err)
		assert.Equal(t, []string{fmt.Sprintf("p%d-a", i), fmt.Sprintf("p%d-b", i)}, r.Words)
	}
	assert.Zero(t, batch.Failed(results))
}

func TestExpand_RecordsErrors(t *testing.T) {
	results, err := batch.Expand(context.Background(), []string{"{a,b}", "a{b", "c"}, batch.Options{Jobs: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, results[0].Words)
	require.ErrorIs(t, results[1].Err, braces.ErrMalformedInput)
	assert.Nil(t, results[1].Words)
	assert.Equal(t, []string{"c"}, results[2].Words)
	assert.Equal(t, 1, batch.Failed(results))
}

func TestExpand_Strict(t *testing.T) {
	_, err := batch.Expand(context.Background(), []string{"ok", "a}b"}, batch.Options{Jobs: 1, Strict: true})
	require.ErrorIs(t, err, braces.ErrMalformedInput)
	assert.Contains(t, err.Error(), `"a}b"`)
}

func TestExpand_BraceOptions(t *testing.T) {
	results, err := batch.Expand(context.Background(), []string{"{a,b}{c,d}"}, batch.Options{
		BraceOptions: []braces.Option{braces.WithMaxResults(2)},
	})
	require.NoError(t, err)
	require.ErrorIs(t, results[0].Err, braces.ErrTooManyResults)
}

func TestExpand_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := batch.Expand(ctx, []string{"{a,b}"}, batch.Options{})
	require.ErrorIs(t, err, context.Canceled)
}
