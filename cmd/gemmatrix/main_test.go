package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gemmatrix/internal/adapters/config"
	"go.trai.ch/gemmatrix/internal/adapters/hasher"
	"go.trai.ch/gemmatrix/internal/adapters/render"
	"go.trai.ch/gemmatrix/internal/app"
	"go.trai.ch/gemmatrix/internal/core/domain"
	"go.trai.ch/gemmatrix/internal/core/ports/mocks"
	"go.trai.ch/gemmatrix/internal/engine/matrix"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T, newApp func(*mocks.MockLogger) *app.App) (ComponentProvider, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := newApp(mockLogger)

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}, mockLogger
}

// realApp wires the real loader, builder and renderer around a mock logger.
func realApp(t *testing.T) func(*mocks.MockLogger) *app.App {
	t.Helper()
	return func(log *mocks.MockLogger) *app.App {
		ctrl := gomock.NewController(t)
		h := hasher.New()
		return app.New(
			config.NewLoader(log),
			matrix.NewBuilder(log),
			render.NewRenderer(h),
			h,
			mocks.NewMockWatcher(ctrl),
			log,
		)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dependencies.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestRun_Version verifies that the run function returns 0 when the command succeeds.
func TestRun_Version(t *testing.T) {
	provider, _ := newProvider(t, realApp(t))

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "gemmatrix version")
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

func TestRun_Build(t *testing.T) {
	provider, _ := newProvider(t, realApp(t))
	path := writeFile(t, `
dependencies:
  shared:
    b0:
      - gem: c0
        version: '> 0.0.1'
    b1:
      - gem: c1
        version: '< 1.0.0'
  a0:
    b1:
      - gem: c2
  a1:
    b0:
      - gem: c3
`)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"build", path, "--format", "gemfile"}, stdout, stderr, provider)

	require.Equal(t, 0, exitCode, stderr.String())
	assert.Equal(t, "# a0-b0\ngem 'c0', '> 0.0.1'\n\n"+
		"# a0-b1\ngem 'c1', '< 1.0.0'\ngem 'c2'\n\n"+
		"# a1-b0\ngem 'c0', '> 0.0.1'\ngem 'c3'\n\n"+
		"# a1-b1\ngem 'c1', '< 1.0.0'\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			name:    "falsy document",
			content: "false\n",
			message: "FAILED: [DependenciesParser] Failed to read Dependencies configuration file.\n",
		},
		{
			name:    "missing key",
			content: "foo: bar\n",
			message: "FAILED: [DependenciesParser] Dependencies configuration is invalid. Missing top-level 'dependencies' key.\n",
		},
		{
			name:    "no dependencies",
			content: "dependencies:\n",
			message: "FAILED: [DependenciesParser] Dependencies configuration contains no dependencies.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, _ := newProvider(t, realApp(t))
			path := writeFile(t, tt.content)

			stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
			exitCode := run(context.Background(), []string{"build", path}, stdout, stderr, provider)

			assert.Equal(t, 1, exitCode)
			assert.Equal(t, tt.message, stderr.String())
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	provider, _ := newProvider(t, realApp(t))

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(),
		[]string{"validate", filepath.Join(t.TempDir(), "missing.yml")}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "FAILED: [DependenciesParser] Failed to read Dependencies configuration file.\n", stderr.String())
}

// TestRun_ExecutionError verifies that other failures go through the logger.
func TestRun_ExecutionError(t *testing.T) {
	provider, mockLogger := newProvider(t, realApp(t))
	path := writeFile(t, "dependencies:\n  a0:\n    b0:\n      - gem: c0\n")

	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrUnknownMatrixKey.Error())
	})

	exitCode := run(context.Background(), []string{"build", path, "--key", "a9-b9"},
		new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
