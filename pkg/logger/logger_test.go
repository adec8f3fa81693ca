package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitAndLevelString(t *testing.T) {
	defer Init("info")

	cases := map[string]string{
		"debug":    "debug",
		"WARN":     "warn",
		"warning":  "warn",
		"Error":    "error",
		"nonsense": "info",
		"":         "info",
	}
	for in, want := range cases {
		Init(in)
		require.Equal(t, want, LevelString(), "Init(%q)", in)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	defer Init("info")

	Init("warn")
	Debugf("debug-msg")
	Infof("info-msg")
	Warnf("warn-msg")
	Errorf("error-msg %d", 7)

	out := buf.String()
	require.NotContains(t, out, "debug-msg")
	require.NotContains(t, out, "info-msg")
	require.Contains(t, out, "[WARN] warn-msg")
	require.Contains(t, out, "[ERROR] error-msg 7")

	buf.Reset()
	Init("info")
	Info("Todo Added")
	require.True(t, strings.HasSuffix(strings.TrimSpace(buf.String()), "[INFO] Todo Added"), buf.String())
}

func TestFatalfExits(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	Init("fatal")
	defer Init("info")
	Fatalf("cannot start: %s", "no store")

	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), "[FATAL] cannot start: no store")
}
