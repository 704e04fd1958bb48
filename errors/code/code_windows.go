//go:build windows

package code

import "fmt"

// AppAlreadyLocked reports that the named Windows application mutex is
// already held by another process.
type AppAlreadyLocked struct {
	Name string
}

func (e AppAlreadyLocked) Error() string {
	return fmt.Sprintf("the windows app lock %s already exists", e.Name)
}

// AppLockFailed reports that the Windows application mutex could not be created.
type AppLockFailed struct {
	Err error
}

func (e AppLockFailed) Error() string {
	return fmt.Sprintf("could not get windows app lock: %v", e.Err)
}

func (e AppLockFailed) Unwrap() error { return e.Err }

func (AppAlreadyLocked) codeError() {}
func (AppLockFailed) codeError()    {}
