// Package node drives the external Gaia node runtime: install, init, start.
package node

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes an external command, wired to the terminal by default and
// replaced by a recorder in tests.
type Runner interface {
	Run(name string, args ...string) error
}

// ExecRunner runs commands with stdio attached to the current terminal.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// CommandError reports a failed external command with its full command line.
type CommandError struct {
	CommandLine string
	Err         error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed: %s: %v", e.CommandLine, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Node invokes the external runtime that actually installs and serves models.
type Node struct {
	Binary        string // runtime executable, e.g. "gaianet"
	InstallScript string // URL of the runtime install script
	Runner        Runner
}

// New returns a node handle using the real exec runner.
func New(binary, installScript string) *Node {
	return &Node{Binary: binary, InstallScript: installScript, Runner: ExecRunner{}}
}

// Install downloads and runs the runtime install script via the shell.
func (n *Node) Install() error {
	pipeline := fmt.Sprintf("curl -sSfL '%s' | bash", n.InstallScript)
	return n.run("bash", "-c", pipeline)
}

// Init points the runtime at a model configuration. The config document is
// never fetched or parsed here; only its URL is handed over.
func (n *Node) Init(configURL string) error {
	return n.run(n.Binary, "init", "--config", configURL)
}

// Start launches the node.
func (n *Node) Start() error {
	return n.run(n.Binary, "start")
}

// Deploy runs the full sequence install -> init -> start, strictly in that
// order, each awaited to completion. The first failure aborts the rest.
func (n *Node) Deploy(configURL string, skipInstall bool) error {
	if !skipInstall {
		if err := n.Install(); err != nil {
			return err
		}
	}
	if err := n.Init(configURL); err != nil {
		return err
	}
	return n.Start()
}

// Installed reports whether the runtime binary is already on PATH.
func (n *Node) Installed() bool {
	_, err := exec.LookPath(n.Binary)
	return err == nil
}

func (n *Node) run(name string, args ...string) error {
	if err := n.Runner.Run(name, args...); err != nil {
		line := name
		if len(args) > 0 {
			line += " " + strings.Join(args, " ")
		}
		return &CommandError{CommandLine: line, Err: err}
	}
	return nil
}
