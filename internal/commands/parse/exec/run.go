package exec

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/rs/zerolog"
	exprc "go.exprc.dev/pkg"
	"golang.org/x/sync/errgroup"
)

type Format string

const (
	FormatSExpr  Format = "sexpr"
	FormatJSON   Format = "json"
	FormatPretty Format = "pretty"
	FormatTokens Format = "tokens"
)

var Formats = []Format{FormatSExpr, FormatJSON, FormatPretty, FormatTokens}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown format %q", s)
}

// StdinName selects standard input as a source.
const StdinName = "-"

type Config struct {
	Expr   string
	Inputs []string
	Format Format
}

type Executor struct {
	compiler *exprc.Compiler
	stdin    io.Reader
	stdout   io.Writer
}

func NewExecutor(compiler *exprc.Compiler, stdin io.Reader, stdout io.Writer) *Executor {
	return &Executor{
		compiler: compiler,
		stdin:    stdin,
		stdout:   stdout,
	}
}

type source struct {
	name string
	text string
}

// Run parses every input concurrently and writes the results in input order.
// Nothing is written if any input fails.
func (e *Executor) Run(ctx context.Context, config Config) error {
	logger := zerolog.Ctx(ctx)

	sources, err := e.sources(config)
	if err != nil {
		return err
	}

	outputs := make([]string, len(sources))

	group, ctx := errgroup.WithContext(ctx)
	for i := range sources {
		i := i
		group.Go(func() error {
			text, err := sources[i].read(ctx, e.stdin)
			if err != nil {
				return err
			}

			out, err := e.render(ctx, config.Format, sources[i].name, text)
			if err != nil {
				return err
			}

			outputs[i] = out
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	logger.Debug().Int("inputs", len(sources)).Str("format", string(config.Format)).Msg("rendered")

	for i, out := range outputs {
		if len(outputs) > 1 {
			if _, err := fmt.Fprintf(e.stdout, "# %s\n", sources[i].name); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}

		if _, err := io.WriteString(e.stdout, out); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}

func (e *Executor) sources(config Config) ([]source, error) {
	if config.Expr != "" {
		return []source{{name: "<expr>", text: config.Expr}}, nil
	}

	if len(config.Inputs) == 0 {
		return nil, fmt.Errorf("no input")
	}

	// Standard input is read by one goroutine only
	stdin := false

	sources := make([]source, 0, len(config.Inputs))
	for _, name := range config.Inputs {
		if name == StdinName {
			if stdin {
				return nil, fmt.Errorf("standard input %q given more than once", StdinName)
			}

			stdin = true
		}

		sources = append(sources, source{name: name})
	}

	return sources, nil
}

func (s source) read(ctx context.Context, stdin io.Reader) (string, error) {
	if s.text != "" {
		return s.text, nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if s.name == StdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(s.name)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}

	return string(data), nil
}

func (e *Executor) render(ctx context.Context, format Format, name string, text string) (string, error) {
	if format == FormatTokens {
		tokens, err := exprc.Tokenize(text)
		if err != nil {
			return "", fmt.Errorf("%s:%w", name, err)
		}

		var b strings.Builder
		for _, tok := range tokens {
			fmt.Fprintf(&b, "%s\t%s\t%q\n", tok.Loc, tok.Typ, tok.Value)
		}

		return b.String(), nil
	}

	program, err := e.compiler.CompileString(ctx, name, text)
	if err != nil {
		return "", err
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(program, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode %s: %w", name, err)
		}

		return string(data) + "\n", nil
	case FormatPretty:
		return pretty.Sprint(program) + "\n", nil
	default:
		return exprc.Sprint(program) + "\n", nil
	}
}
