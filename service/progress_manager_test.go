package service

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressManager_NonInteractiveWriter(t *testing.T) {
	pm := NewProgressManager().(*ProgressManagerImpl)
	var buf bytes.Buffer
	pm.SetWriter(&buf)

	assert.False(t, pm.IsInteractive())

	pm.Initialize(3)
	pm.Start()
	pm.Increment()
	pm.Increment()
	pm.Complete(true)
	pm.Close()

	assert.Equal(t, 2, pm.Done())
	assert.Zero(t, buf.Len(), "non-interactive progress must not draw a bar")
}

func TestProgressManager_ConcurrentIncrement(t *testing.T) {
	pm := NewProgressManager().(*ProgressManagerImpl)
	pm.SetWriter(&bytes.Buffer{})
	pm.Initialize(50)
	pm.Start()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pm.Increment()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, pm.Done())
}

func TestProgressManager_InitializeResets(t *testing.T) {
	pm := NewProgressManager().(*ProgressManagerImpl)
	pm.SetWriter(&bytes.Buffer{})
	pm.Initialize(1)
	pm.Increment()
	pm.Initialize(1)
	assert.Equal(t, 0, pm.Done())
}
