package choropleth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedToken(i int) SelectionToken {
	return SelectionToken(fmt.Sprintf("tok-%d", i))
}

func TestTokenListMatchesRowCount(t *testing.T) {
	for _, n := range []int{0, 1, 5, 100} {
		tokens := NewTokenList(n, namedToken)
		require.Len(t, tokens, n)
		for i := 0; i < n; i++ {
			tok, ok := tokens.Resolve(i)
			require.True(t, ok)
			assert.Equal(t, namedToken(i), tok)
		}
	}
}

func TestTokenListResolveOutOfRange(t *testing.T) {
	tokens := NewTokenList(3, namedToken)

	_, ok := tokens.Resolve(-1)
	assert.False(t, ok)
	_, ok = tokens.Resolve(3)
	assert.False(t, ok)
}

func TestTokenListRebuildSupersedes(t *testing.T) {
	old := NewTokenList(5, namedToken)
	fresh := NewTokenList(2, func(i int) SelectionToken {
		return SelectionToken(fmt.Sprintf("fresh-%d", i))
	})

	// the new cycle's list is complete on its own; nothing of the old
	// list leaks into it
	require.Len(t, fresh, 2)
	tok, ok := fresh.Resolve(1)
	require.True(t, ok)
	assert.Equal(t, SelectionToken("fresh-1"), tok)
	_, ok = fresh.Resolve(4)
	assert.False(t, ok)
	assert.Len(t, old, 5)
}
