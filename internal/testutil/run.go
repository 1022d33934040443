package testutil

// DefaultRunToken is returned by a FixedRunGenerator built with an empty token.
const DefaultRunToken = "test-run-default"

// FixedRunGenerator hands out the same session run token on every call, so
// recorded traces and golden snapshots stay byte-identical between runs.
//
// It satisfies host.RunTokenGenerator and is stateless.
type FixedRunGenerator struct {
	token string
}

// NewFixedRunGenerator returns a generator for token, or for
// DefaultRunToken when token is empty.
func NewFixedRunGenerator(token string) *FixedRunGenerator {
	if token == "" {
		token = DefaultRunToken
	}
	return &FixedRunGenerator{token: token}
}

func (g *FixedRunGenerator) Generate() string {
	return g.token
}
