package log

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é o subconjunto do logrus usado pela aplicação
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

type contextKey string

// CorrelationIDKey guarda o ID de correlação da requisição no contexto
const CorrelationIDKey contextKey = "correlation_id"

// entryLogger herda os métodos de nível do logrus.Entry, só os métodos
// With* precisam devolver um Logger
type entryLogger struct {
	*logrus.Entry
}

var _ Logger = entryLogger{}

// L é a instância global de Logger
var L Logger = entryLogger{logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro se APP_ENV aponta para desenvolvimento
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

// Configure define nível e formato do logger global. Em desenvolvimento o
// texto é colorido e só os campos de rastreio sobrevivem, em produção cada
// linha é um JSON completo.
func Configure(level string) (logrus.Level, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}

	std := logrus.StandardLogger()
	std.SetLevel(parsed)
	std.ReplaceHooks(make(logrus.LevelHooks))

	if IsDevelopment() {
		std.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
		std.AddHook(developmentFilter{})
	} else {
		std.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	}

	L = entryLogger{logrus.NewEntry(std)}
	return parsed, err
}

// SetupTestLogger configura um logger compacto para testes
func SetupTestLogger() {
	std := logrus.StandardLogger()
	std.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		PadLevelText:  true,
	})
	std.SetLevel(logrus.DebugLevel)
	std.SetReportCaller(false)

	L = entryLogger{logrus.NewEntry(std)}
}

func (l entryLogger) WithField(key string, value interface{}) Logger {
	return entryLogger{l.Entry.WithField(key, value)}
}

func (l entryLogger) WithFields(fields Fields) Logger {
	return entryLogger{l.Entry.WithFields(logrus.Fields(fields))}
}

func (l entryLogger) WithError(err error) Logger {
	return entryLogger{l.Entry.WithError(err)}
}

// WithContext anexa o ID de correlação guardado em ctx, se houver
func (l entryLogger) WithContext(ctx context.Context) Logger {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return l.WithField(string(CorrelationIDKey), correlationID)
	}
	return l
}

// WithCorrelationID gera um novo ID de correlação e o guarda em ctx
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	correlationID, _ := ctx.Value(CorrelationIDKey).(string)
	return correlationID
}

// ForContext retorna L com o ID de correlação de ctx
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
