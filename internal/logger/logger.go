// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Logger is the process-wide logger behind the package functions.
var Logger = log.New()

func init() {
	Logger.SetOutput(os.Stderr)
	Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	Logger.SetLevel(log.InfoLevel)
}

// SetVerbose switches debug logging on or off.
func SetVerbose(verbose bool) {
	if verbose {
		Logger.SetLevel(log.DebugLevel)
		return
	}
	Logger.SetLevel(log.InfoLevel)
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// Info logs msg at info level with alternating key/value fields.
func Info(msg string, args ...any) {
	Logger.WithFields(fields(args)).Info(msg)
}

// Error logs msg at error level with alternating key/value fields.
func Error(msg string, args ...any) {
	Logger.WithFields(fields(args)).Error(msg)
}

// Debug logs msg at debug level with alternating key/value fields.
func Debug(msg string, args ...any) {
	Logger.WithFields(fields(args)).Debug(msg)
}

// Warn logs msg at warning level with alternating key/value fields.
func Warn(msg string, args ...any) {
	Logger.WithFields(fields(args)).Warn(msg)
}

// fields turns alternating key/value arguments into logrus fields.
// A trailing key without a value is logged under "!BADKEY".
func fields(args []any) log.Fields {
	f := make(log.Fields, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			f["!BADKEY"] = args[i]
			break
		}
		f[fmt.Sprint(args[i])] = args[i+1]
	}
	return f
}
