package forward

import (
	lumberjack "github.com/elastic/go-lumber/client/v2"
)

// Beats (lumberjack) delivery endpoint for received log messages
type OutModule struct {
	sink *lumberjack.SyncClient
}
