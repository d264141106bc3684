// Package log is a thin facade over logrus that writes daily log files when enabled.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mpq-cli/mpq/filesystem"
	"github.com/mpq-cli/mpq/key"
	"github.com/mpq-cli/mpq/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// logger discards everything until Setup or Use enables it.
var logger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()

// Setup opens today's log file under where.Logs() and configures the
// formatter and level from config. It is a no-op unless logs.write is set.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		Use(io.Discard, logrus.PanicLevel)
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	Use(f, level)

	return nil
}

// Use sends entries at level or above to out.
func Use(out io.Writer, level logrus.Level) {
	logger.SetOutput(out)
	logger.SetLevel(level)
}

// Logger exposes the underlying logger, e.g. to attach hooks.
func Logger() *logrus.Logger {
	return logger
}

// Enabled reports whether anything below panic level is emitted.
func Enabled() bool {
	return logger.IsLevelEnabled(logrus.ErrorLevel)
}

// Process scopes entries to one playback subprocess.
func Process(pid int, uri string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{"pid": pid, "uri": uri})
}

func Error(args ...interface{})                 { logger.Error(args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
func Warn(args ...interface{})                  { logger.Warn(args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Info(args ...interface{})                  { logger.Info(args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Debug(args ...interface{})                 { logger.Debug(args...) }
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
