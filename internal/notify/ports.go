package notify

import "context"

type Notificator interface {
	// Notify pushes an error report to the ops channel.
	Notify(ctx context.Context, err error, details string) error
}
