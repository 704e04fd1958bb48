package exec

import (
	"bufio"
	"context"
	"errors"
	"io"
	osexec "os/exec"
	"strings"
	"time"

	"github.com/jmgilman/go/tunnelcli/errors/code"
)

// waitDelay bounds how long Wait keeps reading output after the command
// is killed, since orphaned grandchildren can hold the pipes open.
const waitDelay = time.Second

// Command is the concrete implementation of the Executor interface.
type Command struct {
	config  *config
	ctx     context.Context
	timeout time.Duration
}

// New creates a new Command with the given options.
// Options set global defaults that can be overridden by local settings.
func New(opts ...Option) *Command {
	cmd := &Command{
		config: newConfig(),
		ctx:    context.Background(),
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// WithEnv sets environment variables for the command.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.local.env[k] = v
	}
	return c
}

// WithDir sets the working directory for the command.
func (c *Command) WithDir(dir string) Executor {
	c.config.local.dir = dir
	return c
}

// WithContext sets the context for the command.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

// WithTimeout sets a timeout for the command.
func (c *Command) WithTimeout(timeout time.Duration) Executor {
	c.timeout = timeout
	return c
}

// WithInheritEnv enables environment inheritance.
func (c *Command) WithInheritEnv() Executor {
	val := true
	c.config.local.inheritEnv = &val
	return c
}

// Run executes the command with the given arguments.
func (c *Command) Run(args ...string) (*Result, error) {
	defer c.reset()

	if len(args) == 0 {
		return nil, code.ProcessSpawnFailed{Err: osexec.ErrNotFound}
	}

	ctx, cancel := c.runContext()
	defer cancel()

	cmd := c.build(ctx, args)

	var stdout, stderr, combined lockedBuffer
	cmd.Stdout = io.MultiWriter(&stdout, &combined)
	cmd.Stderr = io.MultiWriter(&stderr, &combined)

	if err := cmd.Start(); err != nil {
		return nil, code.ProcessSpawnFailed{Err: err}
	}
	err := cmd.Wait()

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Combined: combined.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	if err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			return result, code.NewCommandFailed(args, result.ExitCode, result.Combined)
		}
		return result, code.ProcessSpawnFailed{Err: err}
	}

	return result, nil
}

// Spawn starts the command and completes its handshake.
func (c *Command) Spawn(handshake Handshake, args ...string) (*Process, error) {
	defer c.reset()

	if len(args) == 0 {
		return nil, code.ProcessSpawnFailed{Err: osexec.ErrNotFound}
	}

	ctx, cancel := c.runContext()
	cmd := c.build(ctx, args)

	var stderr lockedBuffer
	cmd.Stderr = &stderr

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, code.ProcessSpawnFailed{Err: err}
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, code.ProcessSpawnFailed{Err: err}
	}

	proc := &Process{
		cmd:    cmd,
		args:   args,
		stdout: bufio.NewReader(pipe),
		stderr: &stderr,
		cancel: cancel,
	}

	line, err := proc.stdout.ReadString('\n')
	if err == nil {
		err = handshake(strings.TrimRight(line, "\r\n"))
	}
	if err != nil {
		proc.Kill()
		return nil, code.ProcessSpawnHandshakeFailed{Err: err}
	}

	return proc, nil
}

// Clone creates a copy of the executor with the same configuration.
func (c *Command) Clone() Executor {
	return &Command{
		config:  c.config.clone(),
		ctx:     c.ctx,
		timeout: c.timeout,
	}
}

func (c *Command) runContext() (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(c.ctx, c.timeout)
	}
	return context.WithCancel(c.ctx)
}

func (c *Command) build(ctx context.Context, args []string) *osexec.Cmd {
	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)
	cmd.WaitDelay = waitDelay
	cmd.Dir = c.config.dir()
	cmd.Env = c.config.environ()
	return cmd
}

// reset clears local configuration for the next run.
func (c *Command) reset() {
	c.config.resetLocal()
	c.timeout = 0
}
