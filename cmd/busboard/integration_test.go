//go:build integration

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oxonbus/busboard/internal/testutil"
)

var binaryPath string

// TestMain builds the binary before running tests
func TestMain(m *testing.M) {
	binaryPath = filepath.Join(os.TempDir(), "busboard-test")
	build := exec.Command("go", "build", "-o", binaryPath, ".")
	if err := build.Run(); err != nil {
		os.Exit(1)
	}

	code := m.Run()

	_ = os.Remove(binaryPath)
	os.Exit(code)
}

func runCommand(t *testing.T, env []string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)

	stdout, err := cmd.Output()
	stderr := ""
	exitCode := 0

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
			stderr = string(exitErr.Stderr)
		}
	}

	return string(stdout), stderr, exitCode
}

func feedServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(testutil.SampleBoardResponse))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCLI_Version(t *testing.T) {
	stdout, _, exitCode := runCommand(t, nil, "--version")

	if exitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(stdout, "busboard version") {
		t.Errorf("Expected version output, got: %s", stdout)
	}
}

func TestCLI_Help(t *testing.T) {
	stdout, _, exitCode := runCommand(t, nil, "--help")

	if exitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(stdout, "busboard polls the OxonTime real-time feed") {
		t.Errorf("Expected help text, got: %s", stdout)
	}

	commands := []string{"run", "board", "tui"}
	for _, cmd := range commands {
		if !strings.Contains(stdout, cmd) {
			t.Errorf("Expected command '%s' in help output", cmd)
		}
	}
}

func TestCLI_Board_Table(t *testing.T) {
	srv := feedServer(t)

	stdout, stderr, exitCode := runCommand(t,
		[]string{"OXON_URL=" + srv.URL},
		"board", "--no-cache", "--color", "never")

	if exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d (stderr: %s)", exitCode, stderr)
	}
	if !strings.Contains(stdout, "George Street B4") {
		t.Errorf("Expected stop description, got: %s", stdout)
	}
	if !strings.Contains(stdout, "Carterton") {
		t.Errorf("Expected destination, got: %s", stdout)
	}
}

func TestCLI_Board_JSON(t *testing.T) {
	srv := feedServer(t)

	stdout, stderr, exitCode := runCommand(t,
		[]string{"OXON_URL=" + srv.URL},
		"board", "--json", "--no-cache")

	if exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d (stderr: %s)", exitCode, stderr)
	}

	var snap map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &snap); err != nil {
		t.Errorf("Expected valid JSON, got error: %v", err)
	}
}

func TestCLI_Board_InvalidConfig(t *testing.T) {
	_, _, exitCode := runCommand(t,
		[]string{"WALK_MIN=five"},
		"board", "--no-cache")

	if exitCode == 0 {
		t.Error("Expected non-zero exit code for invalid WALK_MIN")
	}
}

func TestCLI_Run_UnknownSink(t *testing.T) {
	srv := feedServer(t)

	_, stderr, exitCode := runCommand(t,
		[]string{"OXON_URL=" + srv.URL},
		"run", "--sink", "plotter", "--no-cache")

	if exitCode == 0 {
		t.Error("Expected non-zero exit code for unknown sink")
	}
	if !strings.Contains(stderr, "unknown sink") {
		t.Errorf("Expected sink error, got: %s", stderr)
	}
}
