package tutorchat

import (
	"time"

	"github.com/ongiao-ai/tutorchat/sessions"
	"github.com/ongiao-ai/tutorchat/stores"
)

// Config holds the application configuration.
type Config struct {
	ModelName         string
	SystemInstruction string
	Addr              string
	SweepSpec         string
	IdleTTL           time.Duration
	Store             stores.MessageStore
}

// NewConfig creates a configuration with default values: the stock tutoring
// persona, an in-memory transcript store, and a 10-minute idle sweep.
func NewConfig() *Config {
	return &Config{
		SystemInstruction: sessions.SystemInstruction,
		Addr:              ":8000",
		SweepSpec:         "@every 10m",
		IdleTTL:           time.Hour,
		Store:             stores.NewMemoryStore(),
	}
}

// WithModelName sets the model name.
func (c *Config) WithModelName(modelName string) *Config {
	c.ModelName = modelName
	return c
}

// WithSystemInstruction replaces the tutoring persona.
func (c *Config) WithSystemInstruction(instruction string) *Config {
	c.SystemInstruction = instruction
	return c
}

// WithAddr sets the listen address.
func (c *Config) WithAddr(addr string) *Config {
	c.Addr = addr
	return c
}

// WithSweep sets the idle-conversation sweep schedule and TTL. An empty spec
// disables sweeping.
func (c *Config) WithSweep(spec string, ttl time.Duration) *Config {
	c.SweepSpec = spec
	c.IdleTTL = ttl
	return c
}

// WithStore sets the transcript store.
func (c *Config) WithStore(store stores.MessageStore) *Config {
	c.Store = store
	return c
}

// WithSQLiteStore switches to the in-memory SQLite store.
func (c *Config) WithSQLiteStore() *Config {
	store, err := stores.NewSQLiteStoreDefault()
	if err != nil {
		panic("Failed to create SQLite store: " + err.Error())
	}
	c.Store = store
	return c
}
