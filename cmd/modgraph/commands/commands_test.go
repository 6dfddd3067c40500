package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modgraph/cmd/modgraph/commands"
	"go.trai.ch/modgraph/internal/build"
	"go.trai.ch/modgraph/internal/core/domain"
)

type mockApp struct {
	resolveFunc func(ctx context.Context, root string) (domain.ModuleGraph, error)
	cleanFunc   func(ctx context.Context, root string) error
}

func (m *mockApp) Resolve(ctx context.Context, root string) (domain.ModuleGraph, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, root)
	}
	return nil, nil
}

func (m *mockApp) Clean(ctx context.Context, root string) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, root)
	}
	return nil
}

func (m *mockApp) CachePath(root string) (string, error) {
	return "/cache/" + root, nil
}

var sampleGraph = domain.ModuleGraph{
	{
		ID:           "app",
		Kind:         domain.ModuleKindSource,
		ContentRoots: []string{"/p/app/src"},
		Dependencies: []string{"lib"},
		JavaVersion:  "17",
	},
	{ID: "lib", Kind: domain.ModuleKindLibrary},
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("defaults to the working directory", func(t *testing.T) {
		var capturedRoot string
		mock := &mockApp{
			resolveFunc: func(_ context.Context, root string) (domain.ModuleGraph, error) {
				capturedRoot = root
				return sampleGraph, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"resolve"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, ".", capturedRoot)
		assert.Contains(t, buf.String(), "MODULE")
		assert.Contains(t, buf.String(), "/p/app/src")
		assert.Contains(t, buf.String(), "library")
	})

	t.Run("prints json", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ string) (domain.ModuleGraph, error) {
				return sampleGraph, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, new(bytes.Buffer))
		cli.SetArgs([]string{"resolve", "/p", "--json"})

		require.NoError(t, cli.Execute(context.Background()))

		var out []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		require.Len(t, out, 2)
		assert.Equal(t, "app", out[0]["id"])
		assert.Equal(t, "17", out[0]["javaVersion"])
		assert.Equal(t, []any{}, out[1]["dependencies"])
	})

	t.Run("returns error on resolve failure", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ string) (domain.ModuleGraph, error) {
				return nil, domain.ErrNoSuitableBuildSystem
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"resolve"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrNoSuitableBuildSystem)
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"resolve", "a", "b"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Clean(t *testing.T) {
	var capturedRoot string
	mock := &mockApp{
		cleanFunc: func(_ context.Context, root string) error {
			capturedRoot = root
			return nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"clean", "proj"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "proj", capturedRoot)
	assert.Contains(t, buf.String(), "cleaned /cache/proj")
}

func TestCommands_CleanError(t *testing.T) {
	mock := &mockApp{
		cleanFunc: func(_ context.Context, _ string) error {
			return errors.New("permission denied")
		},
	}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"clean"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "modgraph version "+build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
	assert.Contains(t, buf.String(), build.Commit)
}

type recordingFormat struct {
	calls []bool
}

func (r *recordingFormat) SetJSON(enable bool) {
	r.calls = append(r.calls, enable)
}

func TestCommands_LogJSON(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []bool
	}{
		{name: "flag set", args: []string{"--log-json", "clean", "/p"}, want: []bool{true}},
		{name: "flag after subcommand", args: []string{"clean", "/p", "--log-json"}, want: []bool{true}},
		{name: "default text", args: []string{"clean", "/p"}, want: []bool{false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := &recordingFormat{}
			cli := commands.New(&mockApp{}).WithLogFormat(format)
			cli.SetArgs(tt.args)
			cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.want, format.calls)
		})
	}
}
