package batch

import (
	"context"
	"time"

	"github.com/teranos/fiscal/errors"
	"github.com/teranos/fiscal/fiscal"
	"github.com/teranos/fiscal/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one Row. Exactly one of Code and Error is set.
type Result struct {
	Line      int    `json:"line" yaml:"line"`
	Name      string `json:"name" yaml:"name"`
	Code      string `json:"code,omitempty" yaml:"code,omitempty"`
	Rule      string `json:"rule,omitempty" yaml:"rule,omitempty"`
	Filtered  bool   `json:"filtered,omitempty" yaml:"filtered,omitempty"`
	StateCode string `json:"state_code,omitempty" yaml:"state_code,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`

	err error
}

// Err returns the generation error, if any.
func (r Result) Err() error { return r.err }

// OK reports whether a code was generated.
func (r Result) OK() bool { return r.err == nil }

// Summary counts the outcomes of a run.
type Summary struct {
	Total    int `json:"total" yaml:"total"`
	OK       int `json:"ok" yaml:"ok"`
	Failed   int `json:"failed" yaml:"failed"`
	Filtered int `json:"filtered" yaml:"filtered"`
}

// Summarize counts results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case !r.OK():
			s.Failed++
		case r.Filtered:
			s.OK++
			s.Filtered++
		default:
			s.OK++
		}
	}
	return s
}

// Runner generates codes for rows with a bounded number of workers.
type Runner struct {
	gen     *fiscal.Generator
	workers int
	log     *zap.SugaredLogger
}

// NewRunner creates a Runner. workers < 1 runs rows one at a time.
func NewRunner(gen *fiscal.Generator, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{gen: gen, workers: workers, log: logger.ComponentLogger("batch")}
}

// Run generates a code for every row. Results are in row order. Row failures
// are reported in their Result; only cancellation of ctx fails the run.
func (r *Runner) Run(ctx context.Context, rows []Row) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, row := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.generate(row)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "batch cancelled")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "batch cancelled")
	}

	s := Summarize(results)
	r.log.Infow("batch complete",
		logger.FieldCount, s.Total,
		"failed", s.Failed,
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return results, nil
}

func (r *Runner) generate(row Row) Result {
	p := row.Person
	res := Result{
		Line: row.Line,
		Name: joinName(p.GivenName, p.PaternalSurname, p.MaternalSurname),
	}

	code, err := r.gen.Generate(p)
	if err != nil {
		r.log.Debugw("row failed", logger.FieldRow, row.Line, logger.FieldError, err)
		res.err = err
		res.Error = err.Error()
		return res
	}

	res.Code = code.String()
	res.Rule = string(code.Rule())
	res.Filtered = code.Filtered()
	res.StateCode = r.gen.Parse(p).StateCode
	return res
}

func joinName(parts ...string) string {
	name := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += p
	}
	return name
}
