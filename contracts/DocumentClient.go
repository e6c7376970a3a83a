package contracts

import "context"

// DocumentClient is the client side view of the document store service.
type DocumentClient interface {
	Fetch(ctx context.Context) (*GridDocument, error)
	// Push sends the whole document and returns the acknowledgment message of the service.
	Push(ctx context.Context, document *GridDocument) (string, error)
}
