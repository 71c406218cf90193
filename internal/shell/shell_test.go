package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// shutdownAfterStart keeps requesting a shutdown once the app has
// started, until the test ends.
func shutdownAfterStart(t *testing.T, opts ...fx.ShutdownOption) fx.Option {
	done := make(chan struct{})
	t.Cleanup(func() { close(done) })

	return fx.Invoke(func(lc fx.Lifecycle, sd fx.Shutdowner) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go func() {
					ticker := time.NewTicker(10 * time.Millisecond)
					defer ticker.Stop()

					for {
						select {
						case <-done:
							return
						case <-ticker.C:
							_ = sd.Shutdown(opts...)
						}
					}
				}()
				return nil
			},
		})
	})
}

func TestShell_RunCleanShutdown(t *testing.T) {
	s := New(zap.NewNop())

	err := s.Run(context.Background(), shutdownAfterStart(t))

	assert.NoError(t, err)
}

func TestShell_RunPropagatesExitCode(t *testing.T) {
	s := New(zap.NewNop())

	err := s.Run(context.Background(), shutdownAfterStart(t, fx.ExitCode(3)))

	assert.True(t, IsExitError(err))
	assert.Equal(t, 3, ExitCode(err))
}

func TestShell_RunFailsOnStartError(t *testing.T) {
	s := New(zap.NewNop())

	err := s.Run(context.Background(), fx.Invoke(func(lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				return errors.New("address already in use")
			},
		})
	}))

	assert.True(t, IsExitError(err))
	assert.Equal(t, 1, ExitCode(err))
}

func TestShell_InjectsContextAndLogger(t *testing.T) {
	log := zap.NewNop()
	s := New(log)

	var gotLog *zap.Logger
	var gotCtx context.Context

	err := s.Run(context.Background(),
		fx.Invoke(func(ctx context.Context, l *zap.Logger) {
			gotCtx = ctx
			gotLog = l
		}),
		shutdownAfterStart(t),
	)

	assert.NoError(t, err)
	assert.NotNil(t, gotCtx)
	assert.Same(t, log, gotLog)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 4, ExitCode(NewExitError(4)))
	assert.False(t, IsExitError(nil))
}
