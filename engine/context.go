package engine

// Context carries a single delivered message and the identities around it.
// A fresh Context is built for every Receive call; actors must not retain it
// past the call.
type Context struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message any
}

// Engine returns the engine hosting this actor.
func (c *Context) Engine() *Engine { return c.engine }

// Self returns the PID of the receiving actor.
func (c *Context) Self() *PID { return c.self }

// Sender returns the PID the message was sent with, or nil when the sender
// did not identify itself.
func (c *Context) Sender() *PID { return c.sender }

// Message returns the delivered message.
func (c *Context) Message() any { return c.message }

// Respond sends msg back to the sender. It is a no-op when the sender is
// unknown.
func (c *Context) Respond(msg any) {
	if c.sender == nil {
		return
	}
	c.engine.Send(c.sender, msg, c.self)
}
