package core

// Logger reports application events. A user value passed in args
// identifies the person an event relates to, when an implementation
// supports that.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
