package readingstore

import (
	"fmt"

	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/jayarege/Samsarademo/schema"
)

// Store is the global reading store instance, set by InitStore.
var Store contract.ReadingStore

// InitStore initializes the global reading store from validated config.
// Safe to call once per process before any command runs.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	store, err := NewStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize reading store: %w", err)
	}
	Store = store
	return nil
}

// CloseStore closes the global store if one was initialized.
func CloseStore() {
	if Store != nil {
		_ = Store.Close()
		Store = nil
	}
}
