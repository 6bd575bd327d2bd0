package broadcast

import (
	"context"
	"errors"

	"github.com/bnema/tabstash/internal/application/port"
)

// Multi publishes to several notifiers. Every notifier is tried; failures are
// joined and returned without stopping the others.
type Multi []port.ChangeNotifier

var _ port.ChangeNotifier = Multi(nil)

// NewMulti drops nil notifiers.
func NewMulti(notifiers ...port.ChangeNotifier) Multi {
	out := make(Multi, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (m Multi) Publish(ctx context.Context, signal port.ChangeSignal) error {
	var errs []error
	for _, n := range m {
		if err := n.Publish(ctx, signal); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
