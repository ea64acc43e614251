package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearSMTPEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM"} {
		t.Setenv(v, "")
	}
}

func TestExecute_PrintsErrorToStderr(t *testing.T) {
	clearSMTPEnv(t)
	t.Setenv("BEOFFICIAL_HOME", t.TempDir())

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"digest", "send", "--to", "vernon@example.com"})

	err := execute(cmd)
	require.Error(t, err)

	// The failure must reach the user, naming every missing variable.
	assert.Contains(t, errOut.String(), "Error:")
	for _, v := range []string{"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM"} {
		assert.Contains(t, errOut.String(), v)
	}
}

func TestExecute_QuietOnSuccess(t *testing.T) {
	t.Setenv("BEOFFICIAL_HOME", t.TempDir())

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, execute(cmd))
	assert.Empty(t, errOut.String())
}
