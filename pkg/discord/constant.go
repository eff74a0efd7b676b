package discord

import "time"

const (
	webhookBaseURL = "https://discord.com/api/webhooks"

	// Discord rejects descriptions longer than this.
	maxDescriptionLength = 4096

	colorInfo    = 0x3498DB
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C
)

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      500 * time.Millisecond,
		DefaultUsername: "visibility-srv",
	}
}
