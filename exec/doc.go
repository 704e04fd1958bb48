// Package exec runs local commands and reports their failures with the
// structured tags from the errors/code package.
//
// The package wraps os/exec behind the Executor interface. Production code
// uses the concrete *Command type while tests can substitute their own
// Executor.
//
// # Basic Usage
//
//	exec := exec.New()
//	result, err := exec.Run("echo", "hello world")
//	if err != nil {
//		return err
//	}
//	fmt.Println(result.Stdout) // "hello world\n"
//
// # Configuration
//
// Options passed to New are global defaults. The With* methods apply to the
// next Run or Spawn only and override the defaults:
//
//	exec := exec.New(exec.WithInheritEnv())
//	result, err := exec.
//		WithDir("/tmp").
//		WithEnv(map[string]string{"LOCAL_VAR": "value"}).
//		WithTimeout(5 * time.Second).
//		Run("some-command")
//
// # Command Wrappers
//
//	systemctl := exec.NewWrapper(exec.New(), "systemctl")
//	result, err := systemctl.Run("--user", "start", "code-tunnel.service")
//
// # Failures
//
// A command that cannot be started yields code.ProcessSpawnFailed. A command
// that exits unsuccessfully yields code.CommandFailed, holding the quoted
// command line, the exit code and the combined output:
//
//	var failed code.CommandFailed
//	if errors.As(err, &failed) {
//		fmt.Println(failed.Code, failed.Output)
//	}
//
// A command killed by a timeout or a cancelled context reports code -1.
//
// # Spawning
//
// Spawn starts a long-running child and reads the first line it prints.
// The Handshake callback decides whether that line is acceptable; if it is
// not, or the child exits first, the child is killed and Spawn returns
// code.ProcessSpawnHandshakeFailed:
//
//	proc, err := exec.Spawn(func(line string) error {
//		if !strings.HasPrefix(line, "listening on ") {
//			return fmt.Errorf("unexpected banner %q", line)
//		}
//		return nil
//	}, "code-server", "--port", "0")
package exec
