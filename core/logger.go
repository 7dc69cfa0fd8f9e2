package core

// Logger is the logging contract shared by the SDK and its consumers.
// args may include an error and any extra context values.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
