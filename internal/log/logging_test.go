package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNewHandlerSplitsByLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(NewHandler(slog.LevelInfo, &stdout, &stderr))

	logger.Debug("hidden")
	logger.Info("compiling", "entry", "psMain")
	logger.Error("compile failed", "entry", "vsMain2D")

	assert.Contains(t, stdout.String(), "entry=psMain")
	assert.NotContains(t, stdout.String(), "compile failed")
	assert.NotContains(t, stdout.String(), "hidden")
	assert.Contains(t, stderr.String(), "entry=vsMain2D")
	assert.NotContains(t, stderr.String(), "compiling")
}

func TestBlobDumper(t *testing.T) {
	var buf bytes.Buffer
	NewBlobDumper(&buf).Dump("SPV_psMain_", []byte{0x01, 0xab, 0xff})
	assert.Equal(t, "SPV_psMain_: 3 bytes, hex: 01 ab ff\n", buf.String())

	// nil writer discards without panicking
	NewBlobDumper(nil).Dump("SPV_psMain_", []byte{0x01})
}

func TestSetupWithFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Level:    "debug",
		File:     filepath.Join(dir, "run.log"),
		DumpFile: filepath.Join(dir, "blobs.txt"),
	}
	logger, dumper, closers, err := Setup(cfg)
	require.NoError(t, err)
	logger.Debug("to file", "entry", "psMain")
	dumper.Dump("DXBC_psMain_", []byte{0x44})
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	logData, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "entry=psMain")

	dumpData, err := os.ReadFile(cfg.DumpFile)
	require.NoError(t, err)
	assert.Equal(t, "DXBC_psMain_: 1 bytes, hex: 44\n", string(dumpData))
}

func TestSetupBadFile(t *testing.T) {
	_, _, _, err := Setup(Config{File: filepath.Join(t.TempDir(), "missing", "run.log")})
	assert.Error(t, err)
}
