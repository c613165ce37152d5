package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.UploadDir) == "" {
		return fmt.Errorf("storage.upload_dir must not be empty")
	}
	if c.Storage.MaxFileSize <= 0 {
		return fmt.Errorf("storage.max_file_size must be > 0 (got %d)", c.Storage.MaxFileSize)
	}
	if c.Storage.MaxGroupSize < 0 {
		return fmt.Errorf("storage.max_group_size must be >= 0 (got %d)", c.Storage.MaxGroupSize)
	}
	if c.Realtime.SubscriberBuffer <= 0 {
		return fmt.Errorf("realtime.subscriber_buffer must be > 0 (got %d)", c.Realtime.SubscriberBuffer)
	}
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}
	return nil
}
