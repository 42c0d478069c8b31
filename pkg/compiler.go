package exprc

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Compiler runs the front end over named inputs. It logs through the
// zerolog logger attached to the context, if any.
type Compiler struct{}

func NewCompiler() *Compiler {
	return &Compiler{}
}

func (c *Compiler) Compile(ctx context.Context, filename string) (*Program, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	return c.CompileFromReader(ctx, filename, f)
}

func (c *Compiler) CompileFromReader(ctx context.Context, name string, reader io.Reader) (*Program, error) {
	src, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return c.CompileString(ctx, name, string(src))
}

func (c *Compiler) CompileString(ctx context.Context, name string, src string) (*Program, error) {
	logger := zerolog.Ctx(ctx).With().Str("source", name).Logger()
	logger.Debug().Int("bytes", len(src)).Msg("parsing")

	program, err := Parse(src)
	if err != nil {
		logger.Debug().Err(err).Msg("parse failed")
		return nil, fmt.Errorf("%s:%w", name, err)
	}

	logger.Debug().Int("statements", len(program.Body)).Msg("parsed")

	return program, nil
}
