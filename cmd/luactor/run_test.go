package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/choznerol/luactor/engine"
)

type captureActor struct {
	mu   sync.Mutex
	msgs []string
}

func (c *captureActor) Receive(ctx *engine.Context) {
	if s, ok := ctx.Message().(string); ok {
		c.mu.Lock()
		c.msgs = append(c.msgs, s)
		c.mu.Unlock()
	}
}

func (c *captureActor) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}

func TestPumpLines(t *testing.T) {
	eng := engine.New()
	capture := &captureActor{}
	target := eng.Spawn(capture)

	pumpLines(context.Background(), strings.NewReader("one\ntwo\nthree\n"), eng, target, nil)

	require.Eventually(t, func() bool {
		return len(capture.snapshot()) == 3
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"one", "two", "three"}, capture.snapshot())
}

// syncBuffer guards a bytes.Buffer written from the actor goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestConsoleActor_PrintsReplies(t *testing.T) {
	buf := &syncBuffer{}
	console := &consoleActor{out: buf}

	eng := engine.New()
	pid := eng.Spawn(console)
	eng.Send(pid, "reply-text", nil)
	eng.Stop(pid)

	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "reply-text")
	}, 2*time.Second, 10*time.Millisecond)

	// system messages produce no output
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
