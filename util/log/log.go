package log

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	eParser "github.com/go-errors/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	logTimeFormat = "2006-01-02 15:04:05.000"

	// Frames between the caller of an exported function and fileInfo/extract.
	callerSkip = 4
)

// levelFiles maps every level to its rotated log file.
var levelFiles = map[logrus.Level]string{
	logrus.DebugLevel: "debug.log",
	logrus.InfoLevel:  "info.log",
	logrus.WarnLevel:  "warn.log",
	logrus.ErrorLevel: "error.log",
}

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	loggers   = discardLoggers()
	logPath   = "./logs"
	debug     bool
	logPrefix string
)

// Init opens one rotated log file per level under the log directory.
// Debug output is dropped unless debugMode is set.
func Init(debugMode bool) {
	if err := os.MkdirAll(logPath, 0700); err != nil {
		panic(err)
	}

	debug = debugMode

	l := make(map[logrus.Level]*logrus.Logger, len(levelFiles))
	for level, name := range levelFiles {
		l[level] = newLogger(level, levelOutput(level, name))
	}
	loggers = l
}

// SetPath sets the log directory, it must be called before Init.
func SetPath(dir string) {
	if dir != "" {
		logPath = dir
	}
}

// SetPrefix sets the output prefix, e.g. the config label.
func SetPrefix(prefix string) {
	logPrefix = prefix
}

// discardLoggers keeps the package usable before Init, e.g. in tests.
func discardLoggers() map[logrus.Level]*logrus.Logger {
	l := make(map[logrus.Level]*logrus.Logger, len(levelFiles))
	for level := range levelFiles {
		l[level] = newLogger(logrus.PanicLevel, ioutil.Discard)
	}

	return l
}

func newLogger(level logrus.Level, out io.Writer) *logrus.Logger {
	return &logrus.Logger{
		Out:       out,
		Formatter: new(logFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     level,
		ExitFunc:  os.Exit,
	}
}

func levelOutput(level logrus.Level, name string) io.Writer {
	if level == logrus.DebugLevel && !debug {
		return ioutil.Discard
	}

	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   path.Join(logPath, name),
		MaxSize:    30,
		MaxBackups: 100,
		MaxAge:     30,
	})
}

type logFormatter struct{}

// Format renders "time [prefix][level] message".
func (f *logFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(e.Time.Format(logTimeFormat))
	sb.WriteByte(' ')
	if logPrefix != "" {
		sb.WriteString("[" + logPrefix + "]")
	}
	sb.WriteString("[" + e.Level.String() + "] ")
	sb.WriteString(e.Message)

	return []byte(sb.String()), nil
}

// Debugf logs in Debug level.
func Debugf(format string, v ...interface{}) {
	output(logrus.DebugLevel, format, v)
}

// DebugSQL logs a statement and its arguments in Debug level.
func DebugSQL(query string, args []interface{}) {
	if len(args) == 0 {
		output(logrus.DebugLevel, "%s", []interface{}{query})
		return
	}

	output(logrus.DebugLevel, "%s %v", []interface{}{query, args})
}

// Infof logs in Info level.
func Infof(format string, v ...interface{}) {
	output(logrus.InfoLevel, format, v)
}

// Info logs in Info level.
func Info(v ...interface{}) {
	output(logrus.InfoLevel, "", v)
}

// Warnf logs in Warn level.
func Warnf(format string, v ...interface{}) {
	output(logrus.WarnLevel, format, v)
}

// Errorf logs in Error level.
func Errorf(format string, v ...interface{}) {
	output(logrus.ErrorLevel, format, v)
}

// Error logs in Error level.
func Error(v ...interface{}) {
	output(logrus.ErrorLevel, "", v)
}

// Fatalf logs to the error log and exits.
func Fatalf(format string, v ...interface{}) {
	output(logrus.FatalLevel, format, v)
}

// Fatal logs to the error log and exits.
func Fatal(v ...interface{}) {
	output(logrus.FatalLevel, "", v)
}

func output(level logrus.Level, format string, v []interface{}) {
	msg := logHandler(format, v)

	if level == logrus.FatalLevel {
		loggers[logrus.ErrorLevel].Fatal(msg)
		return
	}

	loggers[level].Log(level, msg)
}

func logHandler(format string, v []interface{}) string {
	var sb strings.Builder

	if debug {
		sb.WriteString("[" + fileInfo() + "] ")
	}

	switch {
	case len(v) == 0:
		sb.WriteString(format)
	case format == "":
		for _, arg := range v {
			sb.WriteString(fmt.Sprint(extract(arg)))
		}
	default:
		args := make([]interface{}, len(v))
		for i, arg := range v {
			args[i] = extract(arg)
		}
		fmt.Fprintf(&sb, format, args...)
	}

	msg := sb.String()
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}

	return msg
}

// extract renders errors with their stack, stringers with String
// and plain structs as JSON.
func extract(v interface{}) interface{} {
	switch x := v.(type) {
	case nil:
		return nil
	case error:
		err := eParser.Wrap(x, callerSkip)
		return err.Error() + "\n" + string(err.Stack())
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return nil
		}
		return extract(rv.Elem().Interface())
	case reflect.Struct:
		b, err := json.Marshal(v)
		if err != nil {
			return err.Error()
		}
		return string(b)
	default:
		return v
	}
}

// fileInfo returns "dir/file.go:line" of the logging call site.
func fileInfo() string {
	_, file, line, ok := runtime.Caller(callerSkip)
	if !ok {
		return "<???>"
	}

	return fmt.Sprintf("%s/%s:%d", filepath.Base(filepath.Dir(file)), filepath.Base(file), line)
}
