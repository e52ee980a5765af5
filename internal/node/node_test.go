package node

import (
	"errors"
	"strings"
	"testing"
)

// recordingRunner records every command line and fails those matching fail.
type recordingRunner struct {
	calls []string
	fail  string
}

func (r *recordingRunner) Run(name string, args ...string) error {
	line := name
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}
	r.calls = append(r.calls, line)
	if r.fail != "" && strings.Contains(line, r.fail) {
		return errors.New("exit status 1")
	}
	return nil
}

func testNode(rec *recordingRunner) *Node {
	return &Node{
		Binary:        "gaianet",
		InstallScript: "https://example.test/install.sh",
		Runner:        rec,
	}
}

func TestDeployOrder(t *testing.T) {
	rec := &recordingRunner{}
	if err := testNode(rec).Deploy("https://configs.test/m/config.json", false); err != nil {
		t.Fatalf("Deploy failed: %v", err)
	}

	want := []string{
		"bash -c curl -sSfL 'https://example.test/install.sh' | bash",
		"gaianet init --config https://configs.test/m/config.json",
		"gaianet start",
	}
	if len(rec.calls) != len(want) {
		t.Fatalf("expected %d calls, got %v", len(want), rec.calls)
	}
	for i, w := range want {
		if rec.calls[i] != w {
			t.Errorf("call %d = %q, want %q", i, rec.calls[i], w)
		}
	}
}

func TestDeploySkipInstall(t *testing.T) {
	rec := &recordingRunner{}
	if err := testNode(rec).Deploy("https://configs.test/m/config.json", true); err != nil {
		t.Fatalf("Deploy failed: %v", err)
	}
	if len(rec.calls) != 2 || !strings.HasPrefix(rec.calls[0], "gaianet init") {
		t.Errorf("expected init then start only, got %v", rec.calls)
	}
}

func TestDeployAbortsOnInitFailure(t *testing.T) {
	rec := &recordingRunner{fail: "init"}
	err := testNode(rec).Deploy("https://configs.test/m/config.json", true)
	if err == nil {
		t.Fatal("expected error")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if !strings.Contains(cmdErr.CommandLine, "gaianet init") {
		t.Errorf("error should carry the failing command line, got %q", cmdErr.CommandLine)
	}
	for _, c := range rec.calls {
		if strings.Contains(c, "start") {
			t.Error("start must not run after init fails")
		}
	}
}

func TestDeployAbortsOnInstallFailure(t *testing.T) {
	rec := &recordingRunner{fail: "install.sh"}
	if err := testNode(rec).Deploy("https://configs.test/m/config.json", false); err == nil {
		t.Fatal("expected error")
	}
	if len(rec.calls) != 1 {
		t.Errorf("nothing may run after a failed install, got %v", rec.calls)
	}
}

func TestCommandErrorMessage(t *testing.T) {
	err := &CommandError{CommandLine: "gaianet start", Err: errors.New("exit status 2")}
	msg := err.Error()
	if !strings.Contains(msg, "gaianet start") || !strings.Contains(msg, "exit status 2") {
		t.Errorf("unexpected message %q", msg)
	}
}
