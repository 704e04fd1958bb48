//go:build windows

package code

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func platformSamples() []Error {
	return []Error{
		AppAlreadyLocked{Name: "code-tunnel"},
		AppLockFailed{Err: fs.ErrPermission},
	}
}

func platformTagName(err Error) string {
	switch err.(type) {
	case AppAlreadyLocked:
		return "AppAlreadyLocked"
	case AppLockFailed:
		return "AppLockFailed"
	}
	return ""
}

func TestWindowsAppLock(t *testing.T) {
	require.Equal(t, "the windows app lock code-tunnel already exists", AppAlreadyLocked{Name: "code-tunnel"}.Error())

	var err error = AppLockFailed{Err: fs.ErrPermission}
	require.ErrorIs(t, err, fs.ErrPermission)
}
