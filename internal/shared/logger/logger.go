package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/incidentdesk/incidentdesk/internal/shared/config"
)

// Logger is the process-wide logger installed by Init.
var Logger *slog.Logger

// Init configures the process-wide logger from cfg. debug attaches source
// locations to every level regardless of logger.source_level.
func Init(cfg *config.LoggerConfig, debug bool) error {
	writer, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}

	Logger = New(cfg, writer, debug)
	slog.SetDefault(Logger)
	return nil
}

// New builds a logger writing to w: JSON when logger.format is "json",
// otherwise tint console output, coloured only on a terminal.
func New(cfg *config.LoggerConfig, w io.Writer, debug bool) *slog.Logger {
	level := parseLevel(cfg.Level, slog.LevelInfo)

	sourceLevel := parseLevel(cfg.SourceLevel, slog.LevelWarn)
	if debug {
		sourceLevel = slog.LevelDebug
	}

	var base slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		base = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		base = tint.NewHandler(w, &tint.Options{
			Level:       level,
			TimeFormat:  time.DateTime,
			NoColor:     !isTerminal(w),
			ReplaceAttr: colorizeErrors,
		})
	}

	return slog.New(newSourceHandler(base, sourceLevel))
}

func parseLevel(s string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "stdout", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}

func colorizeErrors(_ []string, a slog.Attr) slog.Attr {
	if a.Key == "error" && a.Value.Kind() == slog.KindAny {
		if err, ok := a.Value.Any().(error); ok {
			return tint.Err(err)
		}
	}
	return a
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Get returns the process-wide logger, falling back to console defaults
// when Init has not run.
func Get() *slog.Logger {
	if Logger == nil {
		Logger = New(&config.LoggerConfig{}, os.Stdout, false)
		slog.SetDefault(Logger)
	}
	return Logger
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}
