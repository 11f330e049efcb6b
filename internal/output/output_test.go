package output_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251019-go-pkg-braces/internal/batch"
	"github.com/lwmacct/251019-go-pkg-braces/internal/config"
	"github.com/lwmacct/251019-go-pkg-braces/internal/output"
)

var results = []batch.Result{
	{Pattern: "{b,a,b}", Words: []string{"b", "a", "b"}},
	{Pattern: "x{", Err: errors.New("braces: malformed input: unterminated group (offset 1)")},
}

func TestWrite_Lines(t *testing.T) {
	tests := []struct {
		name string
		opts output.Options
		want string
	}{
		{name: "as produced", want: "b\na\nb\n"},
		{name: "sorted", opts: output.Options{Sort: true}, want: "a\nb\nb\n"},
		{name: "unique", opts: output.Options{Unique: true}, want: "a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.Write(&buf, config.FormatLines, results, tt.opts))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, config.FormatJSON, results, output.Options{}))

	var got []output.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, output.Record{Pattern: "{b,a,b}", Count: 3, Words: []string{"b", "a", "b"}}, got[0])
	assert.Equal(t, "x{", got[1].Pattern)
	assert.Contains(t, got[1].Error, "unterminated group")
	assert.Empty(t, got[1].Words)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, config.FormatYAML, results, output.Options{Unique: true}))

	var got []output.Record
	require.NoError(t, yamlv3.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, []string{"a", "b"}, got[0].Words)
	assert.Equal(t, 2, got[0].Count)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := output.Write(&bytes.Buffer{}, "xml", results, output.Options{})
	require.Error(t, err)
}

func TestRecords_DoesNotMutateInput(t *testing.T) {
	in := []batch.Result{{Pattern: "p", Words: []string{"z", "a"}}}
	_ = output.Records(in, output.Options{Sort: true})
	assert.Equal(t, []string{"z", "a"}, in[0].Words)
}
