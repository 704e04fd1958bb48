package exec

import (
	"context"
	"time"
)

// Executor is the main interface for executing commands.
// It provides a fluent API for configuring and running commands.
type Executor interface {
	// WithEnv sets environment variables for the command.
	// These are local settings that override any global environment variables.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the command.
	// This is a local setting that overrides any global working directory.
	WithDir(dir string) Executor

	// WithContext sets the context for the command.
	// The command will be killed if the context is canceled.
	WithContext(ctx context.Context) Executor

	// WithTimeout bounds the command's run time.
	WithTimeout(timeout time.Duration) Executor

	// WithInheritEnv inherits environment variables from the parent process.
	WithInheritEnv() Executor

	// Run executes the command with the given arguments and waits for it.
	// A command that cannot be started fails with code.ProcessSpawnFailed;
	// one that exits unsuccessfully fails with code.CommandFailed.
	Run(args ...string) (*Result, error)

	// Spawn starts the command and waits for its handshake line on stdout.
	// A command that cannot be started fails with code.ProcessSpawnFailed;
	// one whose handshake fails is killed and fails with
	// code.ProcessSpawnHandshakeFailed.
	Spawn(handshake Handshake, args ...string) (*Process, error)

	// Clone creates a copy of the executor with the same configuration.
	Clone() Executor
}

// Result represents the result of a command execution.
type Result struct {
	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Combined is the combined stdout and stderr output
	Combined string

	// ExitCode is the exit code returned by the command
	ExitCode int
}

// Handshake checks the first line a spawned process writes to stdout,
// without its trailing newline.
type Handshake func(line string) error

// Option is a function that configures a Command with global settings.
// These settings are applied at creation time and can be overridden by local settings.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.global.env[k] = v
		}
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.global.dir = dir
	}
}

// WithContext returns an Option that sets the global context.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.ctx = ctx
	}
}

// WithInheritEnv returns an Option that globally enables environment inheritance.
func WithInheritEnv() Option {
	return func(c *Command) {
		val := true
		c.config.global.inheritEnv = &val
	}
}
