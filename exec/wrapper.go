package exec

import (
	"context"
	"time"
)

// CommandWrapper wraps an Executor to provide a command-specific interface.
// It prepends a command name to all Run() and Spawn() calls, which suits
// tools that are called often with different arguments (e.g., systemctl).
// CommandWrapper implements the Executor interface, allowing it to be used
// anywhere an Executor is expected.
type CommandWrapper struct {
	executor Executor
	cmd      string
}

// NewWrapper creates a new CommandWrapper that prepends the given command to all calls.
func NewWrapper(executor Executor, cmd string) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		cmd:      cmd,
	}
}

// WithEnv sets environment variables for the command.
func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	w.executor = w.executor.WithEnv(env)
	return w
}

// WithDir sets the working directory for the command.
func (w *CommandWrapper) WithDir(dir string) Executor {
	w.executor = w.executor.WithDir(dir)
	return w
}

// WithContext sets the context for the command.
func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	w.executor = w.executor.WithContext(ctx)
	return w
}

// WithTimeout sets a timeout for the command.
func (w *CommandWrapper) WithTimeout(timeout time.Duration) Executor {
	w.executor = w.executor.WithTimeout(timeout)
	return w
}

// WithInheritEnv enables environment inheritance.
func (w *CommandWrapper) WithInheritEnv() Executor {
	w.executor = w.executor.WithInheritEnv()
	return w
}

// Run executes the wrapped command with the given arguments.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	return w.executor.Run(w.fullArgs(args)...)
}

// Spawn starts the wrapped command with the given arguments.
func (w *CommandWrapper) Spawn(handshake Handshake, args ...string) (*Process, error) {
	return w.executor.Spawn(handshake, w.fullArgs(args)...)
}

// Clone creates a copy of the wrapper with the same configuration.
func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		cmd:      w.cmd,
	}
}

func (w *CommandWrapper) fullArgs(args []string) []string {
	return append([]string{w.cmd}, args...)
}
