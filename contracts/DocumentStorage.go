package contracts

type DocumentStorage interface {
	// Load returns nil document without error when nothing was persisted yet
	Load() (*GridDocument, error)
	Save(document *GridDocument) error
	Close() error
}
