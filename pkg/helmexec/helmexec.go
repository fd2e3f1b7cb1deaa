// Package helmexec invokes the helm executable. Arguments are collected with
// an immutable fluent builder and rendered in insertion order, so the same
// inputs always produce the same argument vector.
package helmexec

import (
	"errors"
	"fmt"
	osexec "os/exec"
	"strings"
	"time"

	"github.com/macropower/chartpack/pkg/exec"
)

var (
	// ErrNotFound indicates the helm executable could not be found or started.
	ErrNotFound = errors.New("helm executable not found")

	// ErrRun indicates helm started but exited non-zero.
	ErrRun = errors.New("helm failed")
)

// Helm locates and runs the helm executable.
type Helm struct {
	// Bin is the helm executable name or path.
	Bin string

	// Timeout kills helm after the given duration. Zero means no timeout.
	Timeout time.Duration
}

// New creates a [Helm] using the given executable. An empty bin falls back to
// "helm" on the PATH.
func New(bin string) *Helm {
	if bin == "" {
		bin = "helm"
	}

	return &Helm{Bin: bin}
}

// Command starts a builder with the given positional arguments, e.g.
// Command("package", chartDir).
func (h *Helm) Command(args ...string) *Command {
	return &Command{
		helm: h,
		args: args,
	}
}

type flagArg struct {
	name  string
	value string
	bare  bool
}

// Command is an immutable helm invocation under construction. Builder methods
// return a copy, so partially-built commands can be shared and extended
// independently.
type Command struct {
	helm   *Helm
	stdin  string
	args   []string
	flags  []flagArg
	secret []string
}

func (c *Command) clone() *Command {
	d := *c
	d.args = append([]string(nil), c.args...)
	d.flags = append([]flagArg(nil), c.flags...)
	d.secret = append([]string(nil), c.secret...)

	return &d
}

// Flag appends --name value. Empty values render nothing at all, not an empty
// flag.
func (c *Command) Flag(name, value string) *Command {
	if value == "" {
		return c
	}

	d := c.clone()
	d.flags = append(d.flags, flagArg{name: name, value: value})

	return d
}

// BoolFlag appends --name.
func (c *Command) BoolFlag(name string) *Command {
	d := c.clone()
	d.flags = append(d.flags, flagArg{name: name, bare: true})

	return d
}

// SecretFlag appends --name with the stdin sentinel "-" and arranges for
// secret to be fed to the process on standard input. The secret never appears
// in the argument vector (visible in process listings) nor in logs.
func (c *Command) SecretFlag(name, secret string) *Command {
	if secret == "" {
		return c
	}

	d := c.clone()
	d.flags = append(d.flags, flagArg{name: name, value: "-"})
	d.stdin = secret
	d.secret = append(d.secret, secret)

	return d
}

// Args renders the full argument vector, excluding the executable itself.
func (c *Command) Args() []string {
	args := append([]string(nil), c.args...)
	for _, f := range c.flags {
		if f.bare {
			args = append(args, "--"+f.name)

			continue
		}

		args = append(args, "--"+f.name, f.value)
	}

	return args
}

// String returns the redacted command line.
func (c *Command) String() string {
	return exec.Redact(c.secret)(strings.Join(append([]string{c.helm.Bin}, c.Args()...), " "))
}

// Run executes the command and returns the captured output. Failures are
// classified: [ErrNotFound] when the executable cannot be started, [ErrRun]
// when it exits non-zero. The run error carries the captured process output.
func (c *Command) Run() (string, error) {
	cmd := osexec.Command(c.helm.Bin, c.Args()...)
	if c.stdin != "" {
		cmd.Stdin = strings.NewReader(c.stdin)
	}

	out, err := exec.RunCommandExt(cmd, exec.CmdOpts{
		Redactor:      exec.Redact(c.secret),
		Timeout:       c.helm.Timeout,
		CaptureStderr: true,
	})
	if err != nil {
		if exec.IsLaunchError(err) {
			return out, fmt.Errorf("%w: %w", ErrNotFound, err)
		}

		return out, fmt.Errorf("%w: %w", ErrRun, err)
	}

	return out, nil
}
