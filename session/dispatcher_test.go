package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	dherrors "github.com/xraph/dashub/internal/errors"
	"github.com/xraph/dashub/internal/logger"
)

func TestDispatcherRunsHandlersInOrder(t *testing.T) {
	d := NewDispatcher(nil)

	var calls []string
	d.On("x", func(Event) error { calls = append(calls, "first"); return nil })
	d.On("x", func(Event) error { calls = append(calls, "second"); return nil })
	d.On("y", func(Event) error { calls = append(calls, "other"); return nil })

	assert.Empty(t, d.Dispatch(Event{Kind: "x"}))
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, []string{"x", "y"}, d.Kinds())
}

func TestDispatcherIsolatesFailures(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	d := NewDispatcher(logger.NewFromZap(zap.New(core)))

	var reached bool
	d.On("x", func(Event) error { return errors.New("boom") })
	d.On("x", func(Event) error { panic("kaput") })
	d.On("x", func(Event) error { reached = true; return nil })

	failures := d.Dispatch(Event{Kind: "x"})

	assert.True(t, reached)
	require.Len(t, failures, 2)
	assert.EqualError(t, failures[0], "x: boom")
	assert.True(t, dherrors.Is(failures[1], &dherrors.DashubError{Code: dherrors.CodeHandlerPanic}))
	assert.Equal(t, 2, logs.FilterMessage("event handler failed").Len())
}

func TestDispatcherIgnoresUnknownKinds(t *testing.T) {
	assert.Empty(t, NewDispatcher(nil).Dispatch(Event{Kind: "nobody:listens"}))
}
