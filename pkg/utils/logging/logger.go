package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/clog/hooks"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))

func init() {
	_ = Configure("text", "info", "stdout")
}

// Default returns the default logger
func Default() *slog.Logger {
	return defaultLogger
}

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// secretFilter masks every credential type the service handles, plus fields tagged `masq:"secret"`.
func secretFilter() func(groups []string, a slog.Attr) slog.Attr {
	mask := masq.MaskWithSymbol('*', 16)
	return masq.New(
		masq.WithTag("secret"),
		masq.WithType[types.GitHubAppPrivateKey](mask),
		masq.WithType[types.GitHubToken](mask),
		masq.WithType[types.GitHubWebhookSecret](mask),
		masq.WithType[types.BoardAPIToken](mask),
		masq.WithType[types.CIAPIToken](mask),
	)
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "stdout", "-", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	fd, err := os.Create(filepath.Clean(output))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption.Wrap(err), "failed to open log file", goerr.V("path", output))
	}
	return fd, nil
}

func textHandler(w io.Writer, level slog.Level, filter func([]string, slog.Attr) slog.Attr) slog.Handler {
	return clog.New(
		clog.WithWriter(w),
		clog.WithLevel(level),
		clog.WithSource(true),
		clog.WithColorMap(&clog.ColorMap{
			Level: map[slog.Level]*color.Color{
				slog.LevelDebug: color.New(color.FgGreen, color.Bold),
				slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
				slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
				slog.LevelError: color.New(color.FgRed, color.Bold),
			},
			LevelDefault: color.New(color.FgBlue, color.Bold),
			Time:         color.New(color.FgWhite),
			Message:      color.New(color.FgHiWhite),
			AttrKey:      color.New(color.FgHiCyan),
			AttrValue:    color.New(color.FgHiWhite),
		}),
		clog.WithAttrHook(hooks.GoErr()),
		clog.WithReplaceAttr(filter),
	)
}

// Configure replaces the default logger. format is "text" (colored, for terminals)
// or "json"; output is stdout, stderr or a file path.
func Configure(format, level, output string) error {
	lv, ok := levels[strings.ToLower(level)]
	if !ok {
		return goerr.Wrap(types.ErrInvalidOption, "invalid log level", goerr.V("value", level))
	}

	if format != "text" && format != "json" {
		return goerr.Wrap(types.ErrInvalidOption, "invalid log format, should be 'json' or 'text'", goerr.V("value", format))
	}

	w, err := openOutput(output)
	if err != nil {
		return err
	}

	filter := secretFilter()
	var handler slog.Handler
	if format == "text" {
		handler = textHandler(w, lv, filter)
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       lv,
			ReplaceAttr: filter,
		})
	}

	defaultLogger = slog.New(handler)
	return nil
}
