package host

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"choroglobe/internal/choropleth"
)

// TokenIssuer mints opaque per-row selection tokens for one cycle.
// Tokens are remembered so later selection requests can be checked
// against the issuing cycle.
type TokenIssuer struct {
	issued []choropleth.SelectionToken
}

// Issue returns the token for orderIndex, minting a fresh UUID per row.
// Reset discards the old list, so a new cycle starts clean.
func (ti *TokenIssuer) Issue(orderIndex int) choropleth.SelectionToken {
	for len(ti.issued) <= orderIndex {
		ti.issued = append(ti.issued, choropleth.SelectionToken(uuid.NewString()))
	}
	return ti.issued[orderIndex]
}

// Reset clears all issued tokens; call at the start of each cycle.
func (ti *TokenIssuer) Reset() { ti.issued = nil }

// LogSink records selection requests. A real host would forward them
// to its selection manager; the demo host logs and remembers the last
// request so the renderer can reflect it.
type LogSink struct {
	log  *zap.Logger
	Last choropleth.SelectionToken
}

func NewLogSink(log *zap.Logger) *LogSink { return &LogSink{log: log} }

func (s *LogSink) Select(token choropleth.SelectionToken) error {
	s.Last = token
	s.log.Info("selection request", zap.String("token", string(token)))
	return nil
}
