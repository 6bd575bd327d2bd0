package port

import "context"

// ChangeSignal is a payload-less broadcast tag. Receivers re-fetch instead of
// expecting a diff.
type ChangeSignal string

// SignalTabGroupsChanged is published after every successful save or delete.
const SignalTabGroupsChanged ChangeSignal = "tabgroups.changed"

// ChangeNotifier broadcasts change signals to other execution contexts.
// Delivery is best-effort: no acknowledgement, and a signal with no listener is dropped.
type ChangeNotifier interface {
	Publish(ctx context.Context, signal ChangeSignal) error
}

// ChangeNotifierFunc adapts a plain function to ChangeNotifier.
type ChangeNotifierFunc func(ctx context.Context, signal ChangeSignal) error

func (f ChangeNotifierFunc) Publish(ctx context.Context, signal ChangeSignal) error {
	return f(ctx, signal)
}
