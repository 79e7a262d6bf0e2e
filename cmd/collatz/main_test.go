package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/collatz/internal/collatz"
	"github.com/san-kum/collatz/internal/config"
)

func TestParseStart(t *testing.T) {
	tests := []struct {
		arg  string
		want int64
	}{
		{"27", 27},
		{"1,000,000", 1000000},
		{"classic", 27},
		{"837799", 837799},
	}
	for _, tt := range tests {
		got, err := parseStart(tt.arg)
		require.NoError(t, err, tt.arg)
		assert.Equal(t, tt.want, got, tt.arg)
	}

	_, err := parseStart("twenty")
	assert.ErrorIs(t, err, collatz.ErrInvalidInput)
}

func newFlagCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&configFile, "config", "", "")
	cmd.Flags().IntVar(&stepCap, "cap", collatz.DefaultCap, "")
	cmd.Flags().IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "")
	cmd.Flags().StringVar(&scale, "scale", config.DefaultScale, "")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "")
	cmd.Flags().StringVar(&dataDir, "data", "", "")
	return cmd
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collatz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start: 97\ninterval_ms: 500\nscale: linear\n"), 0644))

	cmd := newFlagCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--interval", "100"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(97), cfg.Start)
	assert.Equal(t, 100, cfg.IntervalMs)
	assert.Equal(t, "linear", cfg.Scale)
	assert.Equal(t, collatz.DefaultCap, cfg.Cap)
}

func TestLoadConfigRejectsBadScale(t *testing.T) {
	cmd := newFlagCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--scale", "cubic"}))

	_, err := loadConfig(cmd)
	assert.Error(t, err)
}

func TestPlayPrintsEveryStepAndExits(t *testing.T) {
	cmd := newFlagCmd()
	cmd.Use = "play"
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = playSequence
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"6", "--interval", "1"})

	done := make(chan error, 1)
	go func() { done <- cmd.Execute() }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("play did not finish")
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "step 0/8  value 6  f(n) = n/2 = 6 / 2 = 3", lines[0])
	assert.Equal(t, "step 1/8  value 3  f(n) = 3n+1 = 3 * 3 + 1 = 10", lines[1])
	assert.Equal(t, "step 8/8  value 1", lines[8])
}

func TestPlaySingleElementExits(t *testing.T) {
	cmd := newFlagCmd()
	cmd.Use = "play"
	cmd.RunE = playSequence
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"1", "--interval", "1"})

	done := make(chan error, 1)
	go func() { done <- cmd.Execute() }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("play did not finish")
	}
	assert.Equal(t, "step 0/0  value 1\n", out.String())
}
