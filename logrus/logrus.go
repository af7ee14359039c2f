package logrus

import (
	"fmt"
	"io"
	"os"

	"github.com/lukasz-zimnoch/trading"
	"github.com/sirupsen/logrus"
)

type wrapper struct {
	*logrus.Entry
}

func (w *wrapper) WithField(key string, value interface{}) trading.Logger {
	return &wrapper{w.Entry.WithField(key, value)}
}

func (w *wrapper) WithFields(fields map[string]interface{}) trading.Logger {
	return &wrapper{w.Entry.WithFields(fields)}
}

// ConfigureStandardLogger sets up the logrus standard logger writing to
// stdout, as JSON when format is "json" and as text otherwise.
func ConfigureStandardLogger(format, level string) (trading.Logger, error) {
	fieldMap := logrus.FieldMap{
		logrus.FieldKeyLevel: "severity",
		logrus.FieldKeyMsg:   "message",
	}

	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{
			FieldMap: fieldMap,
		})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			FieldMap:      fieldMap,
		})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("could not parse log level: [%v]", err)
	}

	logrus.SetLevel(logLevel)

	logrus.SetOutput(os.Stdout)

	return &wrapper{
		logrus.StandardLogger().WithFields(map[string]interface{}{}),
	}, nil
}

// NewLogger returns a logger writing text records to the given output.
func NewLogger(output io.Writer, level logrus.Level) trading.Logger {
	logger := logrus.New()
	logger.SetOutput(output)
	logger.SetLevel(level)

	return &wrapper{logrus.NewEntry(logger)}
}

// NewDiscardLogger drops every record.
func NewDiscardLogger() trading.Logger {
	return NewLogger(io.Discard, logrus.PanicLevel)
}
