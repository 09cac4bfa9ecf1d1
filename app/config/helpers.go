package config

import (
	"time"
)

// GetTimeout returns the feed's fetch timeout as time.Duration.
func (f *FeedConfig) GetTimeout() time.Duration {
	if f.Timeout <= 0 {
		return 30 * time.Second // default 30 seconds
	}
	return time.Duration(f.Timeout) * time.Second
}
