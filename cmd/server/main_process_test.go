package main

import (
	"errors"
	"os"
	"os/exec"
	"testing"
)

// Re-runs the test binary as a child process so a fatal exit in main can be
// observed without killing the test run.
func TestMainProcess_ExitsWhenRedisUnreachable(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") == "1" {
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMainProcess_ExitsWhenRedisUnreachable")
	cmd.Env = append(os.Environ(),
		"GO_WANT_HELPER_PROCESS=1",
		"SERVER_ENV=development",
		"REDIS_URL=redis://127.0.0.1:0",
		"SYNC_ENABLED=false",
	)

	err := cmd.Run()
	if err == nil {
		t.Fatal("expected helper process to exit with error")
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.Success() {
		t.Fatal("expected non-zero exit status")
	}
}
