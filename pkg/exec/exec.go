// Package exec runs external commands, capturing output and translating
// failures into errors that carry the command line and stderr.
package exec

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Unredacted passes output through unchanged.
var Unredacted = Redact(nil)

// CmdError is returned when a command exits non-zero. It carries the command
// line that was run and the captured stderr, both redacted.
type CmdError struct {
	Cause  error
	Args   string
	Stderr string
}

func (ce *CmdError) Error() string {
	res := fmt.Sprintf("`%v` failed: %v", ce.Args, ce.Cause)
	if ce.Stderr != "" {
		res = fmt.Sprintf("%s: %s", res, ce.Stderr)
	}

	return res
}

func (ce *CmdError) Unwrap() error {
	return ce.Cause
}

func newCmdError(args string, cause error, stderr string) *CmdError {
	return &CmdError{Args: args, Cause: cause, Stderr: stderr}
}

// IsLaunchError reports whether err means the command could not be started at
// all, as opposed to starting and exiting non-zero.
func IsLaunchError(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission)
}

// CmdOpts configures a single command execution.
type CmdOpts struct {
	// Redactor redacts secrets from logged command lines and output.
	Redactor func(text string) string
	// Timeout kills the process after the given duration. Zero means no
	// timeout; the command may block indefinitely.
	Timeout time.Duration
	// CaptureStderr appends stderr to the returned output.
	CaptureStderr bool
}

// DefaultCmdOpts has no timeout and no redaction.
var DefaultCmdOpts = CmdOpts{
	Redactor: Unredacted,
}

// Redact returns a redactor that replaces every occurrence of items with
// asterisks.
func Redact(items []string) func(text string) string {
	return func(text string) string {
		for _, item := range items {
			if item == "" {
				continue
			}

			text = strings.ReplaceAll(text, item, "******")
		}

		return text
	}
}

// randString returns a cryptographically-secure pseudo-random alpha-numeric
// string of a given length.
func randString(n int) (string, error) {
	b := make([]byte, n/2+1) // One extra letter to discard.
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(b)[0:n], nil
}

// RunCommandExt runs cmd, logging the redacted command line and returning the
// captured output. A non-zero exit produces a [*CmdError]; a command that
// cannot be started returns the launch error unchanged (see [IsLaunchError]).
// The caller may set cmd.Stdin before calling to feed the process input.
func RunCommandExt(cmd *exec.Cmd, opts CmdOpts) (string, error) {
	execID, err := randString(5)
	if err != nil {
		return "", err
	}
	logCtx := slog.With(slog.String("execID", execID))

	redactor := DefaultCmdOpts.Redactor
	if opts.Redactor != nil {
		redactor = opts.Redactor
	}

	// Log in a way we can copy-and-paste into a terminal.
	args := strings.Join(cmd.Args, " ")
	logCtx.Info(redactor(args), slog.String("dir", cmd.Dir))

	var stdout bytes.Buffer

	var stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()

	err = cmd.Start()
	if err != nil {
		return "", fmt.Errorf("start `%s`: %w", redactor(args), err)
	}

	done := make(chan error)
	go func() { done <- cmd.Wait() }()

	var timeoutCh <-chan time.Time
	if opts.Timeout != 0 {
		timeoutCh = time.NewTimer(opts.Timeout).C
	}

	output := func() string {
		out := stdout.String()
		if opts.CaptureStderr {
			out += stderr.String()
		}

		return strings.TrimSuffix(out, "\n")
	}

	select {
	case <-timeoutCh:
		_ = cmd.Process.Kill()
		<-done

		err = newCmdError(redactor(args), fmt.Errorf("timeout after %v", opts.Timeout), "")
		logCtx.Error(err.Error())

		return output(), err

	case err := <-done:
		if err != nil {
			logCtx.Debug(redactor(output()), slog.Duration("duration", time.Since(start)))

			cerr := newCmdError(redactor(args), errors.New(redactor(err.Error())), strings.TrimSpace(redactor(stderr.String())))
			logCtx.Error(cerr.Error())

			return output(), cerr
		}
	}

	logCtx.Debug(redactor(output()), slog.Duration("duration", time.Since(start)))

	return output(), nil
}

// RunCommand runs name with args using opts.
func RunCommand(name string, opts CmdOpts, arg ...string) (string, error) {
	return RunCommandExt(exec.Command(name, arg...), opts)
}
