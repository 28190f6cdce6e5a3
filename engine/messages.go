package engine

// Started is delivered to an actor once, before any user message.
type Started struct{}

// Stopping is delivered when the actor has been asked to stop. It is the last
// message before Stopped and the actor's chance to clean up.
type Stopping struct{}

// Stopped is delivered after the actor's run loop has exited. No further
// messages follow.
type Stopped struct{}

// envelope pairs a message with its sender for mailbox delivery.
type envelope struct {
	sender  *PID
	message any
}
