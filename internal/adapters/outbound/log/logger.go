package log

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
// Output defaults to stdout; the CLI points it at stderr so results stay pipeable.
type InitLogger struct {
	Output io.Writer
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	out := il.Output
	if out == nil {
		out = os.Stdout
	}
	depend.Register(log.New(out, "", log.LstdFlags|log.Lmsgprefix))
	return ctx, nil
}
