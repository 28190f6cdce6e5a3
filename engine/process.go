package engine

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of one actor: its mailbox, stop channel and
// goroutine-confined state.
type process struct {
	engine  *Engine
	pid     *PID
	actor   Actor
	mailbox chan *envelope
	stopCh  chan struct{}
	stopped atomic.Bool
	logger  *slog.Logger
}

func newProcess(engine *Engine, pid *PID, actor Actor, mailboxSize int) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		actor:   actor,
		mailbox: make(chan *envelope, mailboxSize),
		stopCh:  make(chan struct{}),
		logger:  engine.logger.With("pid", pid.String()),
	}
}

// deliver enqueues a message without blocking. A full mailbox drops the
// message; a stopped process drops everything but system messages.
func (p *process) deliver(message any, sender *PID) {
	if p.stopped.Load() && !isSystemMessage(message) {
		return
	}
	select {
	case p.mailbox <- &envelope{sender: sender, message: message}:
	default:
		p.logger.Warn("mailbox full, dropping message", "type", messageType(message))
	}
}

// signalStop closes the stop channel exactly once.
func (p *process) signalStop() {
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
}

// run is the actor's main loop. It exits when the stop channel closes,
// delivering Stopped and releasing actor resources on the way out.
func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		p.invoke(Stopped{}, nil)
		if closer, ok := p.actor.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				p.logger.Error("actor close failed", "error", err)
			}
		}
		p.engine.remove(p.pid)
	}()

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("actor run loop panicked",
				"panic", r,
				"stack", string(debug.Stack()))
			p.stopped.Store(true)
			p.signalStop()
		}
	}()

	for {
		select {
		case <-p.stopCh:
			// messages already queued keep their delivery order, even when
			// the stop signal races ahead of the mailbox
			p.drainMailbox()
			if p.stopped.CompareAndSwap(false, true) {
				// stop was forced without a Stopping message; run the
				// cleanup path before exiting
				p.invoke(Stopping{}, nil)
			}
			return

		case env := <-p.mailbox:
			if p.handleEnvelope(env) {
				return
			}
		}
	}
}

// drainMailbox processes everything already enqueued without blocking.
func (p *process) drainMailbox() {
	for {
		select {
		case env := <-p.mailbox:
			p.handleEnvelope(env)
		default:
			return
		}
	}
}

// handleEnvelope dispatches one message and reports whether the process
// finished a Stopping transition and should exit its loop.
func (p *process) handleEnvelope(env *envelope) bool {
	if p.stopped.Load() && !isSystemMessage(env.message) {
		return false
	}

	if _, ok := env.message.(Stopping); ok {
		if p.stopped.CompareAndSwap(false, true) {
			p.invoke(env.message, env.sender)
			p.signalStop()
			return true
		}
		return false
	}

	p.invoke(env.message, env.sender)
	return false
}

// invoke calls Receive with panic isolation so a misbehaving actor cannot
// take down the engine.
func (p *process) invoke(message any, sender *PID) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("actor receive panicked",
				"type", messageType(message),
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()

	p.actor.Receive(&Context{
		engine:  p.engine,
		self:    p.pid,
		sender:  sender,
		message: message,
	})
}

func messageType(message any) string {
	return fmt.Sprintf("%T", message)
}
