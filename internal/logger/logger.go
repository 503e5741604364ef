// Package logger configures the process-wide structured logger.
//
// The tracker logs operational detail (fallback-pattern hits, skipped lines,
// stage timings) through logrus; audit-worthy findings go to the diagnostics
// report instead, so log output never carries state the pipeline depends on.
package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Setup configures logrus for a run. Level is one of debug, info, warn,
// error; unknown values fall back to info. The text formatter writes to w,
// which is stderr in the CLI so stdout stays clean for report output.
func Setup(level string, w io.Writer) {
	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
}
