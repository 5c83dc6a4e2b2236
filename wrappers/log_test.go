package wrappers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hasbyte1/go-ww/wrappers"
)

func observed(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}

func TestLogRecordsWrapper(t *testing.T) {
	logger, logs := observed(zap.DebugLevel)

	l := wrappers.NewList(1, 2, 3)
	assert.Same(t, l, l.Log(logger, "list"))
	wrappers.NewTuple("a").Log(logger, "tuple")
	wrappers.NewDict(map[string]int{"k": 1}).Log(logger, "dict")
	wrappers.NewString("héllo").Log(logger, "string")

	entries := logs.All()
	require.Len(t, entries, 4)

	fields := entries[0].ContextMap()
	assert.Equal(t, "list", entries[0].Message)
	assert.Equal(t, "List", fields["kind"])
	assert.Equal(t, int64(3), fields["len"])
	assert.Contains(t, fields["value"], "1")

	assert.Equal(t, "Tuple", entries[1].ContextMap()["kind"])
	assert.Equal(t, "Dict", entries[2].ContextMap()["kind"])
	assert.Equal(t, int64(5), entries[3].ContextMap()["len"], "strings log their rune count")
}

func TestIterableLogKeepsItems(t *testing.T) {
	logger, logs := observed(zap.DebugLevel)

	g := wrappers.Range(0, 3, 1).Log(logger, "range")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(3), logs.All()[0].ContextMap()["len"])
	assert.Equal(t, []int{0, 1, 2}, g.ToSlice())
}

func TestIterableLogDisabledDoesNotRead(t *testing.T) {
	logger, logs := observed(zap.InfoLevel)

	pulled := 0
	g := wrappers.NewIterable(counted(3, &pulled)).Log(logger, "quiet")
	assert.Zero(t, pulled)
	assert.Zero(t, logs.Len())
	assert.Equal(t, []int{0, 1, 2}, g.ToSlice())
}

func TestLogNilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		wrappers.NewList(1).Log(nil, "x")
		wrappers.Range(0, 1, 1).Log(nil, "x")
	})
}
