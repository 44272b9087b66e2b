package providers

import (
	"dbb/internal/structures"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
	TypeBot
	TypeSend
)

// Logger is the application-wide logging facade. Every call is routed to a
// per-type log file so bot traffic, outgoing sends and app lifecycle events
// can be tailed independently.
type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if strings.ToUpper(method) == "POST" {
		return TypePost
	}
	return TypeGet
}

var logFiles = map[TypeEnum]string{
	TypeApp:  "app.log",
	TypeGet:  "access.log",
	TypePost: "access.log",
	TypeBot:  "bot.log",
	TypeSend: "send.log",
}

type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   map[string]*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	lp := &LogProvider{
		loggers: make(map[TypeEnum]zerolog.Logger),
		files:   make(map[string]*os.File),
	}

	for t, name := range logFiles {
		path := filepath.Join(conf.Logger.Dir, name)
		file, ok := lp.files[path]
		if !ok {
			file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, os.FileMode(conf.Logger.Mode))
			if err != nil {
				lp.Close()
				return nil, err
			}
			lp.files[path] = file
		}
		lp.loggers[t] = zerolog.New(file).Level(level).With().Timestamp().Logger()
	}

	return lp, nil
}

func (lp *LogProvider) log(level zerolog.Level, t TypeEnum, format string, args ...interface{}) {
	logger, ok := lp.loggers[t]
	if !ok {
		logger = lp.loggers[TypeApp]
	}
	logger.WithLevel(level).Msgf(format, args...)
}

func (lp *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lp.log(zerolog.ErrorLevel, t, format, args...)
}

func (lp *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lp.log(zerolog.WarnLevel, t, format, args...)
}

func (lp *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lp.log(zerolog.DebugLevel, t, format, args...)
}

func (lp *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lp.log(zerolog.InfoLevel, t, format, args...)
}

// Fatalf logs at fatal level but does not terminate the process. Storage
// degradation is reported through it and the daemon must keep serving.
func (lp *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lp.log(zerolog.FatalLevel, t, format, args...)
}

func (lp *LogProvider) Close() {
	for _, file := range lp.files {
		_ = file.Close()
	}
}
