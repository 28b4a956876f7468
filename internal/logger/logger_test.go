package logger

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_ConcurrentLazyInitialize(t *testing.T) {
	const callers = 8
	loggers := make([]*slog.Logger, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loggers[i] = Get()
		}(i)
	}
	wg.Wait()

	for _, l := range loggers {
		assert.NotNil(t, l)
		assert.Same(t, loggers[0], l)
	}
}
