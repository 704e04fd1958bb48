package exec

import (
	"bufio"
	"context"
	"errors"
	"io"
	osexec "os/exec"

	"github.com/jmgilman/go/tunnelcli/errors/code"
)

// Process is a spawned command that completed its handshake.
type Process struct {
	cmd    *osexec.Cmd
	args   []string
	stdout *bufio.Reader
	stderr *lockedBuffer
	cancel context.CancelFunc
}

// PID returns the operating system process id.
func (p *Process) PID() int {
	return p.cmd.Process.Pid
}

// Stdout returns the process output that follows the handshake line.
func (p *Process) Stdout() io.Reader {
	return p.stdout
}

// Wait waits for the process to exit. An unsuccessful exit is reported
// as code.CommandFailed carrying the captured stderr.
func (p *Process) Wait() error {
	defer p.cancel()

	// Drain stdout so the process cannot block on a full pipe.
	_, _ = io.Copy(io.Discard, p.stdout)

	err := p.cmd.Wait()
	if err == nil {
		return nil
	}

	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return code.NewCommandFailed(p.args, exitErr.ExitCode(), p.stderr.String())
	}
	return err
}

// Kill stops the process and releases its resources.
func (p *Process) Kill() {
	p.cancel()
	_ = p.cmd.Wait()
}
