package gen

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/termgen/go-termgen/oplib/ctext"
	"github.com/termgen/go-termgen/platform/term"
)

// Session scopes symbol freshness to one generation run. The counter is
// explicit state injected into every generator that mints identifiers, so
// freshness never depends on ambient source position; the session ID ties
// emitted output and log lines back to the run that produced them.
//
// There is no synchronization here: the whole translation pass is a single
// sequential reduction.
type Session struct {
	id      string
	counter uint64
}

// NewSession starts a generation session with a fresh identity.
func NewSession() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session's unique identity.
func (s *Session) ID() string { return s.id }

func (s *Session) String() string {
	return fmt.Sprintf("gen.Session{id: %s, symbols: %d}", s.id, s.counter)
}

// Sym mints a collision-resistant C identifier by pasting the prefix, the
// base identifier, and a counter unique within the session. Two calls with
// the same inputs yield distinct identifiers.
func (s *Session) Sym(prefix, id string) string {
	s.counter++
	return fmt.Sprintf("%s%s_%d", prefix, id, s.counter)
}

// SymTerm is Sym expressed through the engine's concatenation primitive:
// cat(prefix, cat(id, cat("_", n))). Reducing the returned term yields the
// same fragment Sym would have produced directly.
func (s *Session) SymTerm(prefix, id string) term.Term {
	s.counter++
	return term.MustCall(ctext.Cat,
		term.Text(prefix),
		term.MustCall(ctext.Cat,
			term.Text(id),
			term.MustCall(ctext.Cat,
				term.Text("_"),
				term.Text(fmt.Sprintf("%d", s.counter)),
			),
		),
	)
}
