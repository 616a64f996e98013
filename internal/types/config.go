package types

// RunMode represents the mode in which the service is running
type RunMode string

const (
	// ModeLocal is the default mode for local development
	ModeLocal RunMode = "local"
	// ModeAPI runs the HTTP API server only
	ModeAPI RunMode = "api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) String() string {
	return string(l)
}
