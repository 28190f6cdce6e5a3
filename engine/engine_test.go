package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures the message sequence an actor observes.
type recorder struct {
	mu     sync.Mutex
	events []string
	done   chan struct{}
}

func newRecorder() *recorder {
	return &recorder{done: make(chan struct{})}
}

func (r *recorder) Receive(ctx *Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch msg := ctx.Message().(type) {
	case Started:
		r.events = append(r.events, "started")
	case Stopping:
		r.events = append(r.events, "stopping")
	case Stopped:
		r.events = append(r.events, "stopped")
		close(r.done)
	case string:
		r.events = append(r.events, msg)
	}
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recorder) waitDone(t *testing.T) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("actor never stopped")
	}
}

func shutdownContext(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func TestEngine_LifecycleOrdering(t *testing.T) {
	eng := New()
	rec := newRecorder()

	pid := eng.Spawn(rec, SpawnWithName("recorder"))
	require.NotNil(t, pid)

	eng.Send(pid, "a", nil)
	eng.Send(pid, "b", nil)
	eng.Stop(pid)
	rec.waitDone(t)

	assert.Equal(t, []string{"started", "a", "b", "stopping", "stopped"}, rec.snapshot())
}

func TestEngine_SendToUnknownPID(t *testing.T) {
	eng := New()
	assert.NotPanics(t, func() {
		eng.Send(&PID{ID: "missing"}, "hello", nil)
		eng.Send(nil, "hello", nil)
		eng.Stop(&PID{ID: "missing"})
		eng.Stop(nil)
	})
}

type echoActor struct{}

func (echoActor) Receive(ctx *Context) {
	if s, ok := ctx.Message().(string); ok {
		ctx.Respond("echo:" + s)
	}
}

func TestEngine_RespondReachesSender(t *testing.T) {
	eng := New()
	rec := newRecorder()

	sink := eng.Spawn(rec)
	echo := eng.Spawn(echoActor{})

	eng.Send(echo, "hi", sink)

	require.Eventually(t, func() bool {
		for _, e := range rec.snapshot() {
			if e == "echo:hi" {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

type panicky struct {
	rec *recorder
}

func (p *panicky) Receive(ctx *Context) {
	if msg, ok := ctx.Message().(string); ok && msg == "boom" {
		panic("kaboom")
	}
	p.rec.Receive(ctx)
}

func TestEngine_ReceivePanicIsIsolated(t *testing.T) {
	eng := New()
	rec := newRecorder()

	pid := eng.Spawn(&panicky{rec: rec})
	eng.Send(pid, "boom", nil)
	eng.Send(pid, "survived", nil)
	eng.Stop(pid)
	rec.waitDone(t)

	assert.Contains(t, rec.snapshot(), "survived")
}

func TestEngine_ShutdownStopsAll(t *testing.T) {
	eng := New()
	recs := []*recorder{newRecorder(), newRecorder(), newRecorder()}
	for _, rec := range recs {
		require.NotNil(t, eng.Spawn(rec))
	}

	ctx, cancel := shutdownContext(t)
	defer cancel()
	require.NoError(t, eng.Shutdown(ctx))

	for _, rec := range recs {
		rec.waitDone(t)
	}
	assert.Equal(t, 0, eng.ActorCount())
	assert.Nil(t, eng.Spawn(newRecorder()), "spawn after shutdown must refuse")
}

type closeTracker struct {
	closed chan struct{}
}

func (c *closeTracker) Receive(*Context) {}

func (c *closeTracker) Close() error {
	close(c.closed)
	return nil
}

func TestEngine_CloserActorIsClosed(t *testing.T) {
	eng := New()
	tracker := &closeTracker{closed: make(chan struct{})}

	pid := eng.Spawn(tracker)
	eng.Stop(pid)

	select {
	case <-tracker.closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close was never called")
	}
}

type blocking struct {
	started    chan struct{}
	processing chan struct{}
	release    chan struct{}
	handled    chan string
}

func (b *blocking) Receive(ctx *Context) {
	switch msg := ctx.Message().(type) {
	case Started:
		close(b.started)
	case string:
		select {
		case b.processing <- struct{}{}:
			<-b.release
		default:
		}
		b.handled <- msg
	}
}

func TestEngine_MailboxOverflowDrops(t *testing.T) {
	eng := New()
	actor := &blocking{
		started:    make(chan struct{}),
		processing: make(chan struct{}, 1),
		release:    make(chan struct{}),
		handled:    make(chan string, 16),
	}

	pid := eng.Spawn(actor, SpawnWithMailboxSize(1))
	select {
	case <-actor.started:
	case <-time.After(2 * time.Second):
		t.Fatal("actor never started")
	}

	// first message blocks inside Receive, second fills the mailbox, the
	// rest are dropped
	eng.Send(pid, "m1", nil)
	select {
	case <-actor.processing:
	case <-time.After(2 * time.Second):
		t.Fatal("first message never reached the actor")
	}
	for i := 0; i < 8; i++ {
		eng.Send(pid, "extra", nil)
	}
	close(actor.release)

	var handled []string
	deadline := time.After(time.Second)
collect:
	for {
		select {
		case msg := <-actor.handled:
			handled = append(handled, msg)
		case <-deadline:
			break collect
		}
	}

	assert.LessOrEqual(t, len(handled), 2, "overflow messages must be dropped, not queued")
	assert.Contains(t, handled, "m1")
}
