package service

// SignalCartUpdated is emitted after every cart mutation, once the new cart
// has been persisted.
const SignalCartUpdated = "cartUpdated"

// Broadcaster is an in-process publish/subscribe hub for payload-free
// signals. Subscribers re-read the state they care about when notified.
type Broadcaster interface {
	// Subscribe registers fn for signal and returns the function that removes
	// it. Calling the returned function more than once is harmless.
	Subscribe(signal string, fn func()) (unsubscribe func())

	// Publish notifies the current subscribers of signal, synchronously.
	Publish(signal string)
}
