// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error { return nil }

func TestLog(t *testing.T) {
	log := NewLogger("", NewWrappedCore(Info, Discard, Plain.ConsoleEncoder()))

	recovered := new(bool)
	panicFunc := func() {
		panic("DON'T PANIC!")
	}
	exitFunc := func() {
		*recovered = true
	}
	log.RecoverAndExit(panicFunc, exitFunc)

	require.True(t, *recovered)
}

func TestLogRecoverAndPanic(t *testing.T) {
	log := NewLogger("", NewWrappedCore(Info, Discard, Plain.ConsoleEncoder()))

	require.PanicsWithValue(t, "DON'T PANIC!", func() {
		log.RecoverAndPanic(func() {
			panic("DON'T PANIC!")
		})
	})
}

func TestLogLevels(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("resampler", NewWrappedCore(Info, buf, Plain.ConsoleEncoder()))

	log.Debug("hidden")
	require.Empty(buf.String())

	log.Info("drew replicates", zap.Int("replicates", 3))
	require.Contains(buf.String(), "drew replicates")
	require.Contains(buf.String(), "INFO")
	require.Contains(buf.String(), "resampler")
	require.Contains(buf.String(), `"replicates": 3`)

	require.True(log.Enabled(Info))
	require.False(log.Enabled(Debug))

	log.SetLevel(Verbo)
	require.True(log.Enabled(Verbo))

	buf.Reset()
	log.Verbo("very detailed")
	require.Contains(buf.String(), "VERBO")

	buf.Reset()
	log.Fatal("still running")
	require.Contains(buf.String(), "FATAL")

	log.SetLevel(Off)
	buf.Reset()
	log.Fatal("nothing")
	require.Empty(buf.String())
}

func TestLogWith(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, buf, JSON.ConsoleEncoder()))

	child := log.With(zap.String("component", "pmf"))
	child.Warn("empty distribution")
	require.Contains(buf.String(), `"component":"pmf"`)
	require.Contains(buf.String(), `"level":"WARN"`)

	buf.Reset()
	log.Warn("plain")
	require.NotContains(buf.String(), "component")
}

func TestLogWrite(t *testing.T) {
	require := require.New(t)

	enabled := &bufferCloser{}
	disabled := &bufferCloser{}
	disabledCore := NewWrappedCore(Info, disabled, Plain.ConsoleEncoder())
	disabledCore.WriterDisabled = true
	log := NewLogger("", NewWrappedCore(Info, enabled, Plain.ConsoleEncoder()), disabledCore)

	n, err := log.Write([]byte("raw"))
	require.NoError(err)
	require.Equal(3, n)
	require.Equal("raw", enabled.String())
	require.Empty(disabled.String())
}

func TestFactoryWritesFiles(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	config := DefaultConfig()
	config.Directory = dir
	config.LogLevel = Debug
	config.DisplayLevel = Off

	f := NewFactory(config)
	log, err := f.Make("bootstrap")
	require.NoError(err)

	_, err = f.Make("bootstrap")
	require.ErrorContains(err, "already exists")

	log.Debug("written to file")
	require.Equal([]string{"bootstrap"}, f.GetLoggerNames())

	require.NoError(f.SetLogLevel("bootstrap", Error))
	require.False(log.Enabled(Debug))
	require.ErrorContains(f.SetLogLevel("pmf", Error), "not found")

	f.Close()

	contents, err := os.ReadFile(filepath.Join(dir, "bootstrap.log"))
	require.NoError(err)
	require.Contains(string(contents), "written to file")
}

func TestNoLog(t *testing.T) {
	require := require.New(t)

	var log Logger = NoLog{}
	log.Info("ignored")
	require.False(log.Enabled(Fatal))
	require.Equal(log, log.With(zap.Int("k", 1)))

	_, err := log.Write([]byte("x"))
	require.ErrorIs(err, errNoLoggerWrite)

	exited := false
	log.RecoverAndExit(func() {}, func() { exited = true })
	require.True(exited)
}
