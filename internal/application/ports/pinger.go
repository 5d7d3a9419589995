package ports

import "context"

// Pinger comprueba que el datastore responde.
type Pinger interface {
	Ping(ctx context.Context) error
}
