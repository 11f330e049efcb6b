package check

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "braces.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: error\n"), 0o600))

	var stdout, stderr bytes.Buffer
	cmd := New()
	cmd.Reader = strings.NewReader(stdin)
	cmd.Writer = &stdout
	cmd.ErrWriter = &stderr

	err := cmd.Run(context.Background(), append([]string{"check", "--config", cfgPath}, args...))

	return stdout.String(), err
}

func TestAction_Counts(t *testing.T) {
	out, err := run(t, "", "It{{em,alic}iz,erat}e{d,}, please.", "plain")
	require.NoError(t, err)
	assert.Equal(t, "6\tIt{{em,alic}iz,erat}e{d,}, please.\n1\tplain\n", out)
}

func TestAction_Invalid(t *testing.T) {
	out, err := run(t, "a{b\n{x,y}\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 patterns invalid")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "error\ta{b\t"))
	assert.Contains(t, lines[0], "unterminated group")
	assert.Equal(t, "2\t{x,y}", lines[1])
}

func TestAction_MaxDepth(t *testing.T) {
	out, err := run(t, "", "--expand-max-depth", "1", "{a,{b}}")
	require.Error(t, err)
	assert.Contains(t, out, "nesting too deep")
}
