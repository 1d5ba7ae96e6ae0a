//go:build !release

package common

// Debug build variant: both backends are reached through the emulator/host loopback.
const (
	BuildVariant      = "debug"
	DefaultAPIBaseURL = "http://10.0.2.2:8000"
	DefaultBotAPIURL  = "http://10.0.2.2:8001"
	DebugLogging      = true
)
