package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gemmatrix/cmd/gemmatrix/commands"
	"go.trai.ch/gemmatrix/internal/app"
	"go.trai.ch/gemmatrix/internal/build"
	"go.trai.ch/gemmatrix/internal/core/domain"
	"go.trai.ch/gemmatrix/internal/engine/matrix"
)

type mockApp struct {
	buildFunc    func(ctx context.Context, path string, opts app.BuildOptions) error
	watchFunc    func(ctx context.Context, path string, opts app.BuildOptions) error
	validateFunc func(ctx context.Context, path string) error
}

func (m *mockApp) Build(ctx context.Context, path string, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, path, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, path string, opts app.BuildOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, path, opts)
	}
	return nil
}

func (m *mockApp) Validate(ctx context.Context, path string) error {
	if m.validateFunc != nil {
		return m.validateFunc(ctx, path)
	}
	return nil
}

type fakeLogger struct {
	json bool
}

func (l *fakeLogger) Info(string)         {}
func (l *fakeLogger) Warn(string)         {}
func (l *fakeLogger) Error(error)         {}
func (l *fakeLogger) SetJSON(enable bool) { l.json = enable }

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.BuildOptions
		var capturedPath string
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, path string, opts app.BuildOptions) error {
				capturedOpts = opts
				capturedPath = path
				called = true
				return nil
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"build", "config/deps.yml", "--format", "JSON",
			"-k", "posix-dev-r2.4", "--key", "win-dev-r2.4", "--discovery", "declared"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.Equal(t, "config/deps.yml", capturedPath)
		assert.Equal(t, domain.FormatJSON, capturedOpts.Format)
		assert.Equal(t, []string{"posix-dev-r2.4", "win-dev-r2.4"}, capturedOpts.Keys)
		assert.Equal(t, matrix.DiscoverDeclared, capturedOpts.Discovery)
		assert.Same(t, out, capturedOpts.Out)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv(commands.FormatEnv, "")

		var capturedOpts app.BuildOptions
		var capturedPath string
		mock := &mockApp{
			buildFunc: func(_ context.Context, path string, opts app.BuildOptions) error {
				capturedOpts = opts
				capturedPath = path
				return nil
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		cli.SetArgs([]string{"build"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, commands.DefaultConfigFile, capturedPath)
		assert.Equal(t, domain.FormatAuto, capturedOpts.Format)
		assert.Empty(t, capturedOpts.Keys)
		assert.Equal(t, matrix.DiscoverUnion, capturedOpts.Discovery)
	})

	t.Run("format from environment", func(t *testing.T) {
		t.Setenv(commands.FormatEnv, "gemfile")

		var capturedOpts app.BuildOptions
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ string, opts app.BuildOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		cli.SetArgs([]string{"build", "deps.yml"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.FormatGemfile, capturedOpts.Format)
	})

	t.Run("watch flag uses Watch", func(t *testing.T) {
		watched := false
		mock := &mockApp{
			buildFunc: func(context.Context, string, app.BuildOptions) error {
				panic("should not be called")
			},
			watchFunc: func(_ context.Context, path string, _ app.BuildOptions) error {
				watched = true
				assert.Equal(t, "deps.yml", path)
				return nil
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		cli.SetArgs([]string{"build", "deps.yml", "--watch"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, watched)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		cli := commands.New(&mockApp{}, &fakeLogger{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build", "deps.yml", "--format", "toml"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnknownFormat.Error())
	})

	t.Run("rejects unknown discovery", func(t *testing.T) {
		cli := commands.New(&mockApp{}, &fakeLogger{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build", "deps.yml", "--discovery", "all"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnknownDiscovery.Error())
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{}, &fakeLogger{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build", "a.yml", "b.yml"})

		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(context.Context, string, app.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build", "deps.yml"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Validate(t *testing.T) {
	var capturedPath string
	mock := &mockApp{
		validateFunc: func(_ context.Context, path string) error {
			capturedPath = path
			return nil
		},
	}

	cli := commands.New(mock, &fakeLogger{})
	cli.SetArgs([]string{"validate", "deps.yml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "deps.yml", capturedPath)
}

func TestCommands_LogJSON(t *testing.T) {
	log := &fakeLogger{}
	cli := commands.New(&mockApp{}, log)
	cli.SetArgs([]string{"--log-json", "validate"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, log.json)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, &fakeLogger{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "gemmatrix version "+build.Version)
}
