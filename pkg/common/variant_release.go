//go:build release

package common

const (
	BuildVariant      = "release"
	DefaultAPIBaseURL = "http://195.20.235.94"
	DefaultBotAPIURL  = "http://195.20.235.94:8001"
	DebugLogging      = false
)
