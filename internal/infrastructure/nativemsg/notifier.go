package nativemsg

import (
	"context"

	"github.com/bnema/tabstash/internal/application/port"
)

// Notifier pushes change signals to the extension as payload-less events.
type Notifier struct {
	conn *Conn
}

var _ port.ChangeNotifier = (*Notifier)(nil)

// NewNotifier creates a notifier over conn.
func NewNotifier(conn *Conn) *Notifier {
	return &Notifier{conn: conn}
}

func (n *Notifier) Publish(ctx context.Context, signal port.ChangeSignal) error {
	return n.conn.Send(ctx, Envelope{Type: string(signal)})
}
