package choropleth

// SelectionToken is an opaque host-issued row identifier. Token i
// always corresponds to the row whose order index is i in the current
// cycle; the list is rebuilt wholesale each cycle so stale tokens are
// never dereferenced.
type SelectionToken string

// TokenList is the per-cycle ordered token list, indexed by order index.
type TokenList []SelectionToken

// NewTokenList issues one token per row. issue must be deterministic
// over the cycle; typically it wraps the host's identity minting.
func NewTokenList(n int, issue func(orderIndex int) SelectionToken) TokenList {
	out := make(TokenList, n)
	for i := range out {
		out[i] = issue(i)
	}
	return out
}

// Resolve maps an order index back to its token.
func (t TokenList) Resolve(orderIndex int) (SelectionToken, bool) {
	if orderIndex < 0 || orderIndex >= len(t) {
		return "", false
	}
	return t[orderIndex], true
}

// SelectionSink receives single-selection requests keyed by token.
// Toggle semantics belong to the host, not this core.
type SelectionSink interface {
	Select(token SelectionToken) error
}
