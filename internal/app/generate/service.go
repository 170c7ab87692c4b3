// Package generate runs the theme pipeline over a batch of base documents.
package generate

import (
	"bytes"
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/ether/internal/generator"
	"github.com/alexisbeaulieu97/ether/internal/logger"
	"github.com/alexisbeaulieu97/ether/internal/store"
	"github.com/alexisbeaulieu97/ether/internal/theme"
	"github.com/alexisbeaulieu97/ether/internal/tokens"
	"github.com/alexisbeaulieu97/ether/internal/validation"
	"github.com/alexisbeaulieu97/ether/pkg/diff"
	apperrors "github.com/alexisbeaulieu97/ether/pkg/errors"
)

// Pipeline stages reported in GenerationErrors.
const (
	StageLoad     = "load"
	StageValidate = "validate"
	StageBuild    = "build"
	StageWrite    = "write"
	StageCheck    = "check"
)

// DefaultParallel bounds concurrent theme builds when a Request leaves
// Parallel unset.
const DefaultParallel = 4

// Store is the persistence the service needs.
type Store interface {
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, name string) (tokens.BaseTokens, error)
	Write(ctx context.Context, name string, th *theme.Theme) (string, error)
	ReadGenerated(ctx context.Context, name string) ([]byte, error)
	OutputPath(name string) string
	CleanupOrphans(ctx context.Context, valid []string) ([]string, error)
}

// Request selects the themes to process.
type Request struct {
	// Names limits the batch. Empty means every base document.
	Names []string
	// Parallel bounds concurrent builds; zero uses DefaultParallel.
	Parallel int
	// Check compares against the files on disk instead of writing.
	Check bool
}

// Service generates themes from a Store.
type Service struct {
	store  Store
	logger *logger.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger injects a logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Service) {
		s.logger = log
	}
}

// NewService constructs a Service backed by st.
func NewService(st Store, opts ...Option) *Service {
	svc := &Service{store: st}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Run processes every requested theme. A failing theme is recorded in the
// summary and never stops the others. The returned error is reserved for
// problems that prevent the batch from starting, or cancellation.
func (s *Service) Run(ctx context.Context, req Request) (Summary, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	names := unique(req.Names)
	if len(names) == 0 {
		names = all
	}

	summary := Summary{Check: req.Check}
	if !req.Check {
		removed, err := s.store.CleanupOrphans(ctx, all)
		if err != nil {
			s.logger.Warn("orphan cleanup failed", "error", err.Error())
		}
		summary.Removed = removed
	}

	parallel := req.Parallel
	if parallel <= 0 {
		parallel = DefaultParallel
	}

	outcomes := make([]Outcome, len(names))
	var g errgroup.Group
	g.SetLimit(parallel)
	for i, name := range names {
		g.Go(func() error {
			outcomes[i] = s.process(ctx, name, req.Check)
			return nil
		})
	}
	_ = g.Wait()

	for _, outcome := range outcomes {
		summary.add(outcome)
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

func (s *Service) process(ctx context.Context, name string, check bool) Outcome {
	start := time.Now()
	log := s.logger.With("theme", name)
	outcome := Outcome{Name: name}

	fail := func(stage string, err error) Outcome {
		outcome.Status = StatusFailed
		outcome.Err = apperrors.NewGenerationError(name, stage, err)
		outcome.Duration = time.Since(start)
		log.Error(err, "theme failed", "stage", stage)
		return outcome
	}

	if err := ctx.Err(); err != nil {
		return fail(StageLoad, err)
	}

	base, err := s.store.Load(ctx, name)
	if err != nil {
		return fail(StageLoad, err)
	}

	report := validation.ValidateBaseTokens(base)
	if !report.Valid {
		outcome.Issues = report.Messages()
		return fail(StageValidate, report.Err(name))
	}

	th, err := generator.BuildTheme(base)
	if err != nil {
		return fail(StageBuild, err)
	}

	if check {
		return s.compare(ctx, outcome, th, start, fail)
	}

	path, err := s.store.Write(ctx, name, th)
	if err != nil {
		return fail(StageWrite, err)
	}

	outcome.Status = StatusGenerated
	outcome.Path = path
	outcome.Duration = time.Since(start)
	log.Info("theme generated", "path", path, "duration", outcome.Duration.String())
	return outcome
}

func (s *Service) compare(ctx context.Context, outcome Outcome, th *theme.Theme, start time.Time, fail func(string, error) Outcome) Outcome {
	want, err := store.Encode(th)
	if err != nil {
		return fail(StageCheck, err)
	}

	outcome.Path = s.store.OutputPath(outcome.Name)
	have, err := s.store.ReadGenerated(ctx, outcome.Name)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fail(StageCheck, err)
	}

	outcome.Duration = time.Since(start)
	if bytes.Equal(have, want) {
		outcome.Status = StatusUnchanged
		return outcome
	}

	outcome.Status = StatusDrifted
	outcome.Diff = diff.Unified(have, want, outcome.Path+" (on disk)", outcome.Path+" (generated)")
	s.logger.Warn("generated theme is out of date", "theme", outcome.Name, "path", outcome.Path)
	return outcome
}

func unique(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
