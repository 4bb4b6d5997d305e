// Package applog is the ambient diagnostic logger for the CLI front-ends:
// a package-level zerolog.Logger writing to stderr, grounded on
// optakt-flow-dps's ledger/forest/trie package (a package-level
// `var Logger zerolog.Logger` initialised in init() with
// `zerolog.New(os.Stderr).Level(...)`). The core merkletree package stays
// a pure, side-effect-free library with no logging of its own — only the
// cmd/ front-ends report diagnostics here, so the algorithm is never
// coupled to an output stream.
package applog

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the shared stderr logger used by the CLI commands.
var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}
