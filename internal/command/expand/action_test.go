package expand

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251019-go-pkg-braces/internal/output"
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

	err := cmd.Run(context.Background(), append([]string{"expand", "--config", cfgPath}, args...))

	return stdout.String(), err
}

func TestAction_Args(t *testing.T) {
	out, err := run(t, "", "thumbnail.{png,jp{e,}g}", "x{1,2}")
	require.NoError(t, err)
	assert.Equal(t, "thumbnail.png\nthumbnail.jpeg\nthumbnail.jpg\nx1\nx2\n", out)
}

func TestAction_Stdin(t *testing.T) {
	out, err := run(t, "{b,a}\n\n{a,b}\r\n", "--output-unique")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\na\nb\n", out)
}

func TestAction_JSON(t *testing.T) {
	out, err := run(t, "", "-f", "json", "--output-sort", "{b,a}{,!}")
	require.NoError(t, err)

	var records []output.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, []string{"a", "a!", "b", "b!"}, records[0].Words)
	assert.Equal(t, 4, records[0].Count)
}

func TestAction_Malformed(t *testing.T) {
	out, err := run(t, "", "ok{1,2}", "a{b,c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 patterns failed")
	assert.Equal(t, "ok1\nok2\n", out)
}

func TestAction_Strict(t *testing.T) {
	_, err := run(t, "", "--expand-strict", "a}b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed input")
}

func TestAction_MaxResults(t *testing.T) {
	_, err := run(t, "", "--expand-max-results", "3", "{a,b}{c,d}")
	require.Error(t, err)
}

func TestAction_InvalidFormat(t *testing.T) {
	_, err := run(t, "", "-f", "xml", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}
