package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tabicons/internal/adapters/telemetry"
	"go.trai.ch/tabicons/internal/app"
	"go.trai.ch/tabicons/internal/core/domain"
	"go.trai.ch/tabicons/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	renderer *mocks.MockIconRenderer
	hasher   *mocks.MockHasher
	loader   *mocks.MockManifestLoader
	verifier *mocks.MockOutputVerifier
	writer   *mocks.MockImageWriter
	logger   *mocks.MockLogger
}

func newProvider(t *testing.T) (ComponentProvider, *testMocks, *bool) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		renderer: mocks.NewMockIconRenderer(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		loader:   mocks.NewMockManifestLoader(ctrl),
		verifier: mocks.NewMockOutputVerifier(ctrl),
		writer:   mocks.NewMockImageWriter(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	application := app.New(
		m.renderer,
		m.loader,
		m.writer,
		m.hasher,
		m.verifier,
		telemetry.NewNoOp(),
		m.logger,
	)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: m.logger,
		}, func() { cleaned = true }, nil
	}
	return provider, m, &cleaned
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _, cleaned := newProvider(t)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "tabicons version")
	assert.True(t, *cleaned)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	provider, m, _ := newProvider(t)

	loadErr := errors.New("load failed")
	m.loader.EXPECT().Load("tabicons.yaml", false).Return(nil, loadErr)
	m.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"generate"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_VerificationFailure verifies that verification failures are not logged twice.
func TestRun_VerificationFailure(t *testing.T) {
	provider, m, _ := newProvider(t)

	plan := &domain.GenerationPlan{
		OutputDir: "images",
		Style:     domain.RenderStyleHard,
		Icons:     domain.Manifest{{Filename: "home.png", Category: domain.CategoryHome}},
	}
	m.loader.EXPECT().Load("tabicons.yaml", false).Return(plan, nil)
	m.verifier.EXPECT().MissingOutputs("images", []string{"home.png"}).Return([]string{"home.png"}, nil)
	m.renderer.EXPECT().Render(gomock.Any(), false, domain.RenderStyleHard).Return(image.NewNRGBA(image.Rect(0, 0, 48, 48)))
	m.writer.EXPECT().Encode(gomock.Any(), gomock.Any()).Return(nil)
	m.hasher.EXPECT().HashBytes(gomock.Any()).Return("ef46db3751d8e999")
	m.logger.EXPECT().Warn(filepath.Join("images", "home.png") + " is missing")
	m.verifier.EXPECT().StrayOutputs("images", []string{"home.png"}).Return(nil, nil)
	m.logger.EXPECT().Error(gomock.Any()).Times(0)

	exitCode := run(context.Background(), []string{"verify"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
