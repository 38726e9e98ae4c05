package app

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/dbg-sync/src/dbgsync/internal/fs"
	"github.com/uber/dbg-sync/src/dbgsync/internal/fs/fsmock"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
)

func TestEnv(t *testing.T) {
	tests := []struct {
		name      string
		setEnvVal string
		expectVal string
	}{
		{
			name:      "local",
			expectVal: EnvLocal,
		},
		{
			name:      "development",
			setEnvVal: "development",
			expectVal: EnvDevelopment,
		},
		{
			name:      "unknown value falls back to local",
			setEnvVal: "production",
			expectVal: EnvLocal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(_envDbgSyncEnvironment, tt.setEnvVal)

			fxtest.New(
				t,
				fx.Provide(func() Context {
					return Context{
						Environment:        EnvLocal,
						RuntimeEnvironment: EnvLocal,
					}
				}),
				fx.Decorate(decorateEnvContext),
				fx.Invoke(func(ctx Context) {
					require.Equal(t, tt.expectVal, ctx.Environment, "unexpected environment")
					require.Equal(t, tt.expectVal, ctx.RuntimeEnvironment, "unexpected runtime environment")
				}),
			).RequireStart().RequireStop()
		})
	}
}

func TestDecorateConfigProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmock.NewMockDbgSyncFS(ctrl)
	fsMock.EXPECT().MkdirAll("/tmp/dbg-sync/logs").Return(nil)

	fxtest.New(
		t,
		fx.Provide(func() fs.DbgSyncFS {
			return fsMock
		}),
		fx.Provide(func() config.Provider {
			p, _ := config.NewStaticProvider(map[string]interface{}{
				"logging": map[string]interface{}{
					"outputPaths": []string{"stdout", "/tmp/dbg-sync/logs/dbg-sync.log"},
				},
			})
			return p
		}),
		fx.Provide(func() Context {
			return Context{RuntimeEnvironment: EnvDevelopment}
		}),
		fx.Decorate(decorateConfigProvider),
		fx.Invoke(func(cfg config.Provider) {}),
	).RequireStart().RequireStop()
}

func TestEnsureLogFolder(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("no errors", func(t *testing.T) {
		fsMock := fsmock.NewMockDbgSyncFS(ctrl)
		fsMock.EXPECT().MkdirAll("/tmp/foo").Return(nil)
		fsMock.EXPECT().MkdirAll("/tmp/bar").Return(nil)

		p, _ := config.NewStaticProvider(map[string]interface{}{
			"logging": map[string]interface{}{
				"outputPaths": []string{
					"/tmp/foo/myfile1.log",
					"/tmp/bar/myfile2.log",
					"stderr",
				},
			},
		})

		cfg, err := ensureLogFolder(p, fsMock)
		require.NoError(t, err)
		assert.Same(t, p, cfg)
	})

	t.Run("error creating directory", func(t *testing.T) {
		fsMock := fsmock.NewMockDbgSyncFS(ctrl)
		fsMock.EXPECT().MkdirAll("/tmp/foo").Return(errors.New("permission denied"))

		p, _ := config.NewStaticProvider(map[string]interface{}{
			"logging": map[string]interface{}{
				"outputPaths": []string{"/tmp/foo/myfile1.log"},
			},
		})
		_, err := ensureLogFolder(p, fsMock)
		assert.ErrorContains(t, err, "permission denied")
	})

	t.Run("creates directories on disk", func(t *testing.T) {
		dir := t.TempDir()
		p, _ := config.NewStaticProvider(map[string]interface{}{
			"logging": map[string]interface{}{
				"outputPaths": []string{filepath.Join(dir, "foo", "myfile1.log")},
			},
		})
		_, err := ensureLogFolder(p, fs.New())
		require.NoError(t, err)
		assert.DirExists(t, filepath.Join(dir, "foo"))
	})

	t.Run("malformed logging block", func(t *testing.T) {
		p, _ := config.NewStaticProvider(map[string]interface{}{
			"logging": "sample",
		})
		_, err := ensureLogFolder(p, fsmock.NewMockDbgSyncFS(ctrl))
		assert.Error(t, err)
	})
}
