package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"sync"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/service"
)

// ExportUseCase renders every report of the requested profiles into a directory
type ExportUseCase struct {
	renderer domain.ReportRenderer
	adapters domain.AdapterProvider
	writer   domain.ReportWriter
	executor domain.ParallelExecutor
	progress domain.ProgressManager
}

// NewExportUseCase creates a new export use case
func NewExportUseCase(
	renderer domain.ReportRenderer,
	adapters domain.AdapterProvider,
	writer domain.ReportWriter,
	executor domain.ParallelExecutor,
	progress domain.ProgressManager,
) *ExportUseCase {
	return &ExportUseCase{
		renderer: renderer,
		adapters: adapters,
		writer:   writer,
		executor: executor,
		progress: progress,
	}
}

// ExportFileName is the file an entity's report is written to
func ExportFileName(profile domain.ProfileType, id string) string {
	return fmt.Sprintf("%s-%s.html", profile.Path(), id)
}

// Execute renders all reports concurrently. Individual failures are
// recorded in the summary and do not stop the remaining reports; the
// returned error is non-nil when any report failed.
func (uc *ExportUseCase) Execute(ctx context.Context, req domain.ExportRequest) (*domain.ExportSummary, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	if req.MaxConcurrency > 0 {
		uc.executor.SetMaxConcurrency(req.MaxConcurrency)
	}
	if req.Timeout > 0 {
		uc.executor.SetTimeout(req.Timeout)
	}

	summary := &domain.ExportSummary{}
	var mu sync.Mutex

	var tasks []domain.ExecutableTask
	for _, profile := range req.Profiles {
		model, err := uc.adapters.Adapter(profile)
		if err != nil {
			return nil, err
		}
		options, err := model.UserOptions(ctx)
		if err != nil {
			return nil, domain.NewUpstreamError(fmt.Sprintf("failed to list %s options", model.Name()), err)
		}

		for _, opt := range options {
			task, err := uc.task(profile, model, opt.Value, req.OutputDir, summary, &mu)
			if err != nil {
				mu.Lock()
				summary.Failures = append(summary.Failures, domain.ExportFailure{Profile: profile, ID: opt.Value, Err: err})
				mu.Unlock()
				continue
			}
			tasks = append(tasks, task)
		}
	}
	summary.Total = len(tasks) + len(summary.Failures)

	if uc.progress != nil {
		uc.progress.Initialize(summary.Total)
		uc.progress.Start()
		defer uc.progress.Close()
	}

	execErr := uc.executor.Execute(ctx, tasks)

	sort.Strings(summary.Written)
	sort.Slice(summary.Failures, func(i, j int) bool {
		a, b := summary.Failures[i], summary.Failures[j]
		if a.Profile != b.Profile {
			return a.Profile < b.Profile
		}
		return a.ID < b.ID
	})

	if uc.progress != nil {
		uc.progress.Complete(len(summary.Failures) == 0 && execErr == nil)
	}

	if len(summary.Failures) > 0 {
		return summary, fmt.Errorf("%d of %d reports failed: %w", len(summary.Failures), summary.Total, summary.Failures[0].Err)
	}
	if execErr != nil {
		return summary, execErr
	}
	return summary, nil
}

func (uc *ExportUseCase) task(
	profile domain.ProfileType,
	model domain.ModelAdapter,
	rawID string,
	dir string,
	summary *domain.ExportSummary,
	mu *sync.Mutex,
) (domain.ExecutableTask, error) {
	id, err := domain.ParseEntityID(rawID)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, ExportFileName(profile, rawID))

	name := fmt.Sprintf("%s/%s", profile.Path(), rawID)
	return service.NewSimpleTask(name, true, func(ctx context.Context) (interface{}, error) {
		if uc.progress != nil {
			defer uc.progress.Increment()
		}
		err := uc.export(ctx, id, model, path)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			summary.Failures = append(summary.Failures, domain.ExportFailure{Profile: profile, ID: rawID, Err: err})
			return nil, err
		}
		summary.Written = append(summary.Written, path)
		return path, nil
	}), nil
}

func (uc *ExportUseCase) export(ctx context.Context, id domain.EntityID, model domain.ModelAdapter, path string) error {
	doc, err := uc.renderer.Render(ctx, id, model)
	if err != nil {
		return err
	}
	return uc.writer.Write(nil, path, domain.OutputFormatHTML, true, func(w io.Writer) error {
		_, err := w.Write(doc)
		return err
	})
}

// validateRequest validates the export request
func (uc *ExportUseCase) validateRequest(req domain.ExportRequest) error {
	if len(req.Profiles) == 0 {
		return fmt.Errorf("at least one profile type is required")
	}
	for _, p := range req.Profiles {
		if _, err := domain.ParseProfileType(string(p)); err != nil {
			return err
		}
	}
	if req.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if req.MaxConcurrency < 0 {
		return fmt.Errorf("max concurrency cannot be negative")
	}
	return nil
}

// ExportUseCaseBuilder provides a builder pattern for creating ExportUseCase
type ExportUseCaseBuilder struct {
	renderer domain.ReportRenderer
	adapters domain.AdapterProvider
	writer   domain.ReportWriter
	executor domain.ParallelExecutor
	progress domain.ProgressManager
}

// NewExportUseCaseBuilder creates a new builder
func NewExportUseCaseBuilder() *ExportUseCaseBuilder {
	return &ExportUseCaseBuilder{}
}

// WithRenderer sets the report renderer
func (b *ExportUseCaseBuilder) WithRenderer(renderer domain.ReportRenderer) *ExportUseCaseBuilder {
	b.renderer = renderer
	return b
}

// WithAdapters sets the adapter provider
func (b *ExportUseCaseBuilder) WithAdapters(adapters domain.AdapterProvider) *ExportUseCaseBuilder {
	b.adapters = adapters
	return b
}

// WithWriter sets the report writer
func (b *ExportUseCaseBuilder) WithWriter(writer domain.ReportWriter) *ExportUseCaseBuilder {
	b.writer = writer
	return b
}

// WithExecutor sets the parallel executor
func (b *ExportUseCaseBuilder) WithExecutor(executor domain.ParallelExecutor) *ExportUseCaseBuilder {
	b.executor = executor
	return b
}

// WithProgress sets the progress manager
func (b *ExportUseCaseBuilder) WithProgress(progress domain.ProgressManager) *ExportUseCaseBuilder {
	b.progress = progress
	return b
}

// Build creates the ExportUseCase with the configured dependencies.
// The progress manager is optional.
func (b *ExportUseCaseBuilder) Build() (*ExportUseCase, error) {
	if b.renderer == nil {
		return nil, fmt.Errorf("report renderer is required")
	}
	if b.adapters == nil {
		return nil, fmt.Errorf("adapter provider is required")
	}
	if b.writer == nil {
		return nil, fmt.Errorf("report writer is required")
	}
	if b.executor == nil {
		return nil, fmt.Errorf("parallel executor is required")
	}
	return NewExportUseCase(b.renderer, b.adapters, b.writer, b.executor, b.progress), nil
}

// BuildWithDefaults fills a missing executor, writer and progress manager
// with the service implementations
func (b *ExportUseCaseBuilder) BuildWithDefaults() (*ExportUseCase, error) {
	if b.executor == nil {
		b.executor = service.NewParallelExecutor()
	}
	if b.writer == nil {
		b.writer = service.NewFileOutputWriter(io.Discard)
	}
	if b.progress == nil {
		b.progress = service.NewProgressManager()
	}
	return b.Build()
}
