package app

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ludo-technologies/empdash/domain"
)

// Mock implementations
type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) ([]byte, error) {
	args := m.Called(ctx, id, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockAdapterProvider struct {
	mock.Mock
}

func (m *mockAdapterProvider) Adapter(profile domain.ProfileType) (domain.ModelAdapter, error) {
	args := m.Called(profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ModelAdapter), args.Error(1)
}

type mockModelAdapter struct {
	mock.Mock
	name string
}

func (m *mockModelAdapter) Name() string {
	return m.name
}

func (m *mockModelAdapter) UserOptions(ctx context.Context) ([]domain.UserOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserOption), args.Error(1)
}

func (m *mockModelAdapter) EventCounts(ctx context.Context, id int64) ([]domain.EventCount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventCount), args.Error(1)
}

func (m *mockModelAdapter) ModelData(ctx context.Context, id int64) (domain.FeatureTable, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.FeatureTable), args.Error(1)
}

func (m *mockModelAdapter) Notes(ctx context.Context, id int64) ([]domain.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}

type mockReportWriter struct {
	mock.Mock
}

func (m *mockReportWriter) Write(writer io.Writer, outputPath string, format domain.OutputFormat, noOpen bool, writeFunc func(io.Writer) error) error {
	args := m.Called(writer, outputPath, format, noOpen, writeFunc)
	if err := args.Error(0); err != nil {
		return err
	}
	if writer != nil {
		return writeFunc(writer)
	}
	return writeFunc(io.Discard)
}

type mockOptionsFormatter struct {
	mock.Mock
}

func (m *mockOptionsFormatter) Write(profile domain.ProfileType, options []domain.Option, format domain.OutputFormat, writer io.Writer) error {
	args := m.Called(profile, options, format, writer)
	return args.Error(0)
}

type mockClassifier struct {
	mock.Mock
}

func (m *mockClassifier) PredictProba(features domain.FeatureTable) ([][2]float64, error) {
	args := m.Called(features)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][2]float64), args.Error(1)
}

type mockProgressManager struct {
	mock.Mock
}

func (m *mockProgressManager) Initialize(maxValue int)    { m.Called(maxValue) }
func (m *mockProgressManager) Start()                     { m.Called() }
func (m *mockProgressManager) Complete(success bool)      { m.Called(success) }
func (m *mockProgressManager) Increment()                 { m.Called() }
func (m *mockProgressManager) SetWriter(writer io.Writer) { m.Called(writer) }
func (m *mockProgressManager) IsInteractive() bool        { return m.Called().Bool(0) }
func (m *mockProgressManager) Close()                     { m.Called() }

// sequentialExecutor runs tasks one after another
type sequentialExecutor struct {
	maxConcurrency int
	timeout        time.Duration
}

func (e *sequentialExecutor) Execute(ctx context.Context, tasks []domain.ExecutableTask) error {
	var firstErr error
	for _, t := range tasks {
		if _, err := t.Execute(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (e *sequentialExecutor) SetMaxConcurrency(max int)        { e.maxConcurrency = max }
func (e *sequentialExecutor) SetTimeout(timeout time.Duration) { e.timeout = timeout }
