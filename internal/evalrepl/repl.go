// Package evalrepl is an interactive shell over internal/evaluator: enter
// a JSON const-expr fixture, see the reduced Value; enter `:type` and a
// JSON type-term fixture, see the reduced type parameter (SPEC_FULL.md §3
// "REPL").
package evalrepl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/sunholo/lcc/internal/econfig"
	"github.com/sunholo/lcc/internal/evalctx"
	"github.com/sunholo/lcc/internal/evaluator"
	"github.com/sunholo/lcc/internal/evalfixture"
	"github.com/sunholo/lcc/internal/modcache"
	"github.com/sunholo/lcc/internal/term"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// noopNominal is the REPL's NominalResolver: with no driver populating
// supertype chains, every projection fails with "no candidate" rather
// than silently succeeding, which is the honest answer for a shell that
// only ever sees one buffer at a time.
type noopNominal struct{}

func (noopNominal) GetNominalSuperTypeCtxs(ty term.Type) ([]evalctx.SuperTypeCtx, bool) {
	return nil, false
}

func (noopNominal) SupertypeOf(a, b term.Type) bool { return false }

// REPL is a persistent evaluator session plus its own scratch history.
type REPL struct {
	eval    *evaluator.Evaluator
	cache   *modcache.Cache
	history []string
}

// New creates a REPL backed by cfg (nil for econfig.Default()) and a
// module cache opened at cachePath ("" for an in-memory cache).
func New(cfg *econfig.Config, cachePath string) (*REPL, error) {
	if cfg == nil {
		cfg = econfig.Default()
	}
	cache, err := modcache.Open(cachePath)
	if err != nil {
		return nil, err
	}
	ctx := evalctx.New("repl", "<repl>", cfg, cache, nil, noopNominal{})
	return &REPL{eval: evaluator.New(ctx), cache: cache}, nil
}

// Close releases the REPL's module-cache handle.
func (r *REPL) Close() error {
	return r.cache.Close()
}

func (r *REPL) prompt() string {
	return "eval> "
}

// Start begins the read-eval-print loop, reading from in and writing to
// out until EOF or a `:quit` command.
func (r *REPL) Start(in io.Reader, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".lcc_evalrepl_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(out, "%s\n", bold("lcc evaluator shell"))
	fmt.Fprintln(out, dim("Enter a JSON const-expr fixture, or :type <json type-term fixture>. :help for commands, :quit to exit."))

	for {
		input, err := line.Prompt(r.prompt())
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		r.history = append(r.history, input)

		if strings.HasPrefix(input, ":") {
			if r.handleCommand(input, out) {
				break
			}
			continue
		}
		r.evalLine(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

// handleCommand processes a `:`-prefixed REPL command, returning true
// when the caller should stop the loop.
func (r *REPL) handleCommand(cmd string, out io.Writer) bool {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		fmt.Fprintln(out, green("Goodbye!"))
		return true
	case ":help", ":h":
		fmt.Fprintln(out, "  :type <json>   reduce a type-term fixture via eval_tp")
		fmt.Fprintln(out, "  :history       show this session's input history")
		fmt.Fprintln(out, "  :quit          exit")
		return false
	case ":history":
		for i, h := range r.history {
			fmt.Fprintf(out, "%3d  %s\n", i+1, h)
		}
		return false
	case ":type":
		rest := strings.TrimSpace(strings.TrimPrefix(cmd, fields[0]))
		r.evalType(rest, out)
		return false
	default:
		fmt.Fprintf(out, "%s: unknown command %q\n", yellow("warning"), fields[0])
		return false
	}
}

func (r *REPL) evalLine(input string, out io.Writer) {
	expr, err := evalfixture.Decode([]byte(input))
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	val, err := r.eval.EvalConstChunk(expr, nil)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	fmt.Fprintf(out, "%s %s : %s\n", dim("=>"), val.String(), val.Type())
}

func (r *REPL) evalType(input string, out io.Writer) {
	tp, err := evalfixture.DecodeTyParam([]byte(input))
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	reduced, err := r.eval.EvalTp(tp)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	fmt.Fprintf(out, "%s %s\n", dim("=>"), reduced.String())
}
