package availabilityapi

type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
