//go:build e2e && unix

package main

import (
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

// usersFile is the directory the development backend serves in tests
var usersFile = filepath.Join("..", "internal", "devserver", "testdata", "users.toml")

// StartBackend runs the binary in -serve mode on a free local port and
// returns its base URL once it answers requests
func StartBackend(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	addr := l.Addr().String()
	l.Close()

	users, err := filepath.Abs(usersFile)
	if err != nil {
		t.Fatalf("failed to resolve users file: %v", err)
	}

	cmd := exec.Command(binPath, "-serve", "-users", users, "-addr", addr)
	cmd.Dir = t.TempDir()
	if err := cmd.Start(); err != nil {
		t.Fatalf("failed to start backend: %v", err)
	}
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_, _ = cmd.Process.Wait()
	})

	base := "http://" + addr
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get(base + "/api/users/search?q=al")
		if err == nil {
			resp.Body.Close()
			return base
		}
		if time.Now().After(deadline) {
			t.Fatalf("backend did not come up on %s: %v", addr, err)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// UnusedURL returns a base URL nothing listens on
func UnusedURL(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	addr := l.Addr().String()
	l.Close()
	return fmt.Sprintf("http://%s", addr)
}
