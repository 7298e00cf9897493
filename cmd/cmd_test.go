package cmd

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEncodeDecodeJournal(t *testing.T) {
	t.Setenv("TUTORLINK_DB_DRIVER", "")
	t.Setenv("TUTORLINK_LOG_LEVEL", "")
	db := filepath.Join(t.TempDir(), "journal.db")
	noEnv := filepath.Join(t.TempDir(), "missing.env")

	text, err := execute(t, "", "encode", "feedback", "DisplayTextAction", "--text", "Check azimuth",
		"--session", "s-1", "--session-type", "LTI_USER", "--env-file", noEnv)
	require.NoError(t, err)
	assert.Contains(t, text, `"kind":"DisplayTextAction"`)

	action, err := execute(t, "", "encode", "action", "--type", "SPOT_REPORT", "--display-name", "Bridge",
		"--env-file", noEnv)
	require.NoError(t, err)
	assert.Contains(t, action, `"kind":"SpotReport"`)

	out, err := execute(t, text+action, "decode", "--record", "--db", db, "--env-file", noEnv)
	require.NoError(t, err)
	assert.Contains(t, out, `[DisplayTextAction: text = "Check azimuth"]`)
	assert.Contains(t, out, "assessment: Spot report submitted (Bridge)")

	out, err = execute(t, "", "journal", "--db", db, "--env-file", noEnv)
	require.NoError(t, err)
	assert.Contains(t, out, "DisplayTextAction")
	assert.Contains(t, out, "SpotReport")

	out, err = execute(t, "", "journal", "view", "1", "--db", db, "--env-file", noEnv)
	require.NoError(t, err)
	assert.Contains(t, out, "LTI_USER")
	assert.Contains(t, out, `"family": "feedback"`)

	out, err = execute(t, "", "stats", "--db", db, "--env-file", noEnv)
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL")

	out, err = execute(t, "n\n", "reset", "--db", db, "--env-file", noEnv)
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, err = execute(t, "yes\n", "reset", "--db", db, "--env-file", noEnv)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 2 message(s).")
}

func TestDecodeReportsInvalidMessages(t *testing.T) {
	noEnv := filepath.Join(t.TempDir(), "missing.env")
	_, err := execute(t, `{"version":"v9.0.0"}`, "decode", "--record=false", "--env-file", noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 message(s) failed")
}

func TestEncodeRejectsUnknownKind(t *testing.T) {
	noEnv := filepath.Join(t.TempDir(), "missing.env")
	_, err := execute(t, "", "encode", "request", "RequestNap", "rest", "--env-file", noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RequestNap")
}

func TestTypes(t *testing.T) {
	noEnv := filepath.Join(t.TempDir(), "missing.env")
	out, err := execute(t, "", "types", "--env-file", noEnv)
	require.NoError(t, err)
	for _, want := range []string{"tutor_action", "NineLineReport", "RequestMidLessonMedia", "PlayAudioAction", "LtiRuntimeParameters", "APPLY_STRATEGY", "EXPERIMENT_USER"} {
		assert.Contains(t, out, want)
	}
}

func TestTruncateKeepsRunes(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 12))
	assert.Equal(t, "sesión-é", truncate("sesión-ééé", 8))
	assert.Equal(t, "日本", truncate("日本語", 2))
}
