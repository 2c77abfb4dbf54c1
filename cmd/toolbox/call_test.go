package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCall(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"call"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCallSuccess(t *testing.T) {
	out, err := runCall(t, "", "hash_data", "data=hello", "algorithm=md5")
	require.NoError(t, err)
	assert.Contains(t, out, "Hash value: 5d41402abc4b2a76b9719d911017c592")
}

func TestCallFailureExitStatus(t *testing.T) {
	out, err := runCall(t, "", "encode_decode", "data=x", "operation=rot13")
	assert.ErrorIs(t, err, errToolFailed)
	assert.True(t, strings.HasPrefix(out, "Error: Unknown operation 'rot13'"))
}

func TestCallUnknownTool(t *testing.T) {
	_, err := runCall(t, "", "nope")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errToolFailed)
}

func TestCallReadsFileAndStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,age\nAda,36\n"), 0o600))

	out, err := runCall(t, "", "convert_data", "data=@"+path, "source_format=csv", "target_format=json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Ada"`)

	out, err = runCall(t, `{"a":1}`, "process_json", "json_data=@-", "operation=validate")
	require.NoError(t, err)
	assert.Contains(t, out, "JSON is valid")
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"url=https://example.com/?a=b", "clean_text=false", "empty="}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"url":        "https://example.com/?a=b",
		"clean_text": "false",
		"empty":      "",
	}, params)

	_, err = parseParams([]string{"novalue"}, nil)
	assert.Error(t, err)
	_, err = parseParams([]string{"=x"}, nil)
	assert.Error(t, err)
}
