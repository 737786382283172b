package linebreak

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"github.com/charmbracelet/log"
)

// Breaker runs the text specification through the line-break collaborator
// and returns its content-stream output. Every stage depends on this
// interface rather than a concrete path, so tests can supply a fake
// without spawning a process.
type Breaker interface {
	Break(ctx context.Context, spec string, width int, align Aligner) (string, error)
}

// CollaboratorError wraps a line-break child process failure: a non-zero
// exit or a pipe I/O error (spec §7 "Collaborator failure", fatal).
type CollaboratorError struct {
	Path   string
	Stderr string
	Err    error
}

func (e *CollaboratorError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("line-break collaborator %q failed: %v\n%s", e.Path, e.Err, e.Stderr)
	}
	return fmt.Sprintf("line-break collaborator %q failed: %v", e.Path, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// ExecBreaker invokes a real external line_break binary, resolved by name
// (or an explicit path) via the system search path.
type ExecBreaker struct {
	// Path is the collaborator binary name or path. Defaults to
	// "line_break" when empty.
	Path string
	// Logger receives the collaborator's stderr, line by line, at Warn
	// level. A nil Logger discards it.
	Logger *log.Logger
}

// Break writes spec to the collaborator's stdin, waits for it to exit,
// and returns its stdout. Per spec §9 / Design Notes, the deadlock that
// classically results from writing and reading a child's pipes on one
// goroutine is avoided by writing stdin and draining stderr on their own
// goroutines while the caller reads stdout synchronously — the same
// shape used to bridge an external CLI's stdio in this codebase's
// subprocess-invoking sibling commands.
func (b *ExecBreaker) Break(ctx context.Context, spec string, width int, align Aligner) (string, error) {
	path := b.Path
	if path == "" {
		path = "line_break"
	}
	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", &CollaboratorError{Path: path, Err: err}
	}

	cmd := exec.CommandContext(ctx, resolved, "-"+align.Flag(), "-w", strconv.Itoa(width))

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", &CollaboratorError{Path: path, Err: err}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", &CollaboratorError{Path: path, Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", &CollaboratorError{Path: path, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return "", &CollaboratorError{Path: path, Err: err}
	}

	go func() {
		defer stdin.Close()
		io.WriteString(stdin, spec)
	}()

	var stderrBuf bytes.Buffer
	stderrDone := make(chan struct{})
	go func() {
		defer close(stderrDone)
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			line := scanner.Text()
			stderrBuf.WriteString(line)
			stderrBuf.WriteByte('\n')
			if b.Logger != nil {
				b.Logger.Warn("line-break collaborator", "stderr", line)
			}
		}
	}()

	out, readErr := io.ReadAll(stdout)
	<-stderrDone
	waitErr := cmd.Wait()

	if waitErr != nil {
		return "", &CollaboratorError{Path: path, Stderr: stderrBuf.String(), Err: waitErr}
	}
	if readErr != nil {
		return "", &CollaboratorError{Path: path, Stderr: stderrBuf.String(), Err: readErr}
	}
	return string(out), nil
}
