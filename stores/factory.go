package stores

import (
	"fmt"
)

// NewStore creates a transcript store based on the configuration type.
func NewStore(config *StoreConfig) (MessageStore, error) {
	switch config.Type {
	case "memory", "":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(config)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}
