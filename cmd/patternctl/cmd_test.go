package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
)

func run(ctx context.Context, args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(append([]string{"--log-output", "none"}, args...))
	root.SetContext(ctx)
	_, err := root.ExecuteC()
	return out.String(), err
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := run(context.Background(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "patternctl version latest")
}

func TestPatternsResolve(t *testing.T) {
	isolate(t)
	out, err := run(context.Background(), "patterns", "resolve", "CLUSTER_HELM_REPO_LIST", "get/user")
	require.NoError(t, err)
	assert.Equal(t, "cluster/helm-repo-list\tCLUSTER_HELM_REPO_LIST\nget/user\tGET_USER\n", out)

	_, err = run(context.Background(), "patterns", "resolve", "not/a/real/pattern")
	assert.ErrorIs(t, err, pattern.ErrUnknownPattern)
}

func TestPatternsListJSON(t *testing.T) {
	isolate(t)
	out, err := run(context.Background(), "patterns", "list", "--json")
	require.NoError(t, err)
	var items []patternInfo
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Len(t, items, pattern.Len())

	out, err = run(context.Background(), "patterns", "list", "--prefix", "cluster/helm-")
	require.NoError(t, err)
	assert.Contains(t, out, "cluster/helm-repo-list")
	assert.NotContains(t, out, "get/user")
}

func TestPatternsDescribeAndCheck(t *testing.T) {
	isolate(t)
	out, err := run(context.Background(), "patterns", "describe", "get/user")
	require.NoError(t, err)
	assert.Contains(t, out, "pattern: get/user\n")
	assert.Contains(t, out, "requestSchema:\n  ")
	assert.Contains(t, out, "name:")
	assert.Contains(t, out, "responseSchema:\n  ")

	out, err = run(context.Background(), "patterns", "describe", "cluster/helm-repo-list")
	require.NoError(t, err)
	assert.Contains(t, out, "requestSchema: null\n")

	out, err = run(context.Background(), "patterns", "check")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ok: "), out)
	assert.Contains(t, out, "fingerprint ")
}

func TestExport(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "patterns.ts")
	_, err := run(context.Background(), "export", "--format", "ts", "-o", path)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "export enum Pattern {")

	out, err := run(context.Background(), "export", "--format", "yaml", "-p", "get/user")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "get/user:\n"), out)

	_, err = run(context.Background(), "export", "--format", "xml")
	assert.Error(t, err)
}

func TestCallLocal(t *testing.T) {
	isolate(t)
	out, err := run(context.Background(), "--db-url", "memory:", "call", "describe")
	require.NoError(t, err)
	var env struct {
		Status string                 `json:"status"`
		Data   model.DescribeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, "success", env.Status)
	assert.Len(t, env.Data.Patterns, pattern.Len())
	assert.True(t, env.Data.Features["describe"])

	_, err = run(context.Background(), "--db-url", "memory:", "call", "get/user", "-d", `{"name":"alice"}`)
	var exitErr ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, exitRemoteError, exitErr.Code)

	_, err = run(context.Background(), "--db-url", "memory:", "call", "audit-log/list", "-d", `{"limit":-1}`)
	assert.ErrorIs(t, err, model.ErrInvalidRequest)

	_, err = run(context.Background(), "call", "nope")
	assert.ErrorIs(t, err, pattern.ErrUnknownPattern)
}

func TestCallYAMLPayloadAndHistory(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	db := "sqlite:" + filepath.Join(dir, "journal.db")
	payload := filepath.Join(dir, "req.yaml")
	require.NoError(t, os.WriteFile(payload, []byte("limit: 5\noffset: 0\n"), 0o644))

	_, err := run(context.Background(), "--db-url", db, "call", "describe")
	require.NoError(t, err)
	out, err := run(context.Background(), "--db-url", db, "call", "audit-log/list", "-f", payload)
	require.NoError(t, err)
	var page struct {
		Data model.AuditLogPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, 1, page.Data.TotalCount)
	require.Len(t, page.Data.Data, 1)
	assert.Equal(t, "describe", page.Data.Data[0].Pattern)

	out, err = run(context.Background(), "--db-url", db, "history", "--json")
	require.NoError(t, err)
	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, 2, list.Total)

	out, err = run(context.Background(), "--db-url", db, "history", "list", "-p", "describe")
	require.NoError(t, err)
	assert.Contains(t, out, "describe")

	out, err = run(context.Background(), "--db-url", db, "history", "prune", "--older-than", "1h")
	require.NoError(t, err)
	assert.Equal(t, "deleted 0 calls\n", out)
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestServeAndRemoteCall(t *testing.T) {
	isolate(t)
	addr := freeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := run(ctx, "--db-url", "memory:", "serve", "--addr", addr)
		done <- err
	}()

	url := "ws://" + addr + "/ws"
	var out string
	require.Eventually(t, func() bool {
		var err error
		out, err = run(context.Background(), "--db-url", "memory:", "--server-url", url, "call", "describe")
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)
	assert.Contains(t, out, `"status": "success"`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
