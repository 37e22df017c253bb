package enums

// Log level names accepted by utils/logger.
const (
	LogLevelDebug  = "debug"
	LogLevelInfo   = "info"
	LogLevelWarn   = "warn"
	LogLevelError  = "error"
	LogLevelFatal  = "fatal"
	LogLevelPanic  = "panic"
	LogLevelDPanic = "dpanic"
)

// Log encodings accepted by utils/logger.
const (
	LogEncodingJSON    = "json"
	LogEncodingConsole = "console"
)
