package exec

import (
	"bytes"
	"sync"
)

// lockedBuffer is a bytes.Buffer safe for concurrent writes from the
// stdout and stderr copiers of a running command.
type lockedBuffer struct {
	buffer bytes.Buffer
	mu     sync.Mutex
}

func (lb *lockedBuffer) Write(p []byte) (int, error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.buffer.Write(p)
}

func (lb *lockedBuffer) String() string {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.buffer.String()
}
