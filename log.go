package inkwell

import "github.com/labstack/gommon/log"

// Logger is the subset of echo.Logger the builder and watcher use. Both the
// gommon logger and an Echo instance's Logger satisfy it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NewLogger returns a gommon logger with the inkwell prefix at INFO level.
func NewLogger() *log.Logger {
	l := log.New("inkwell")
	l.SetHeader("${time_rfc3339} ${level} ${prefix}")
	l.SetLevel(log.INFO)
	return l
}
