package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// setupLogging installs the default logger. Debug level gets colored tint
// output with short source paths, every other level logs JSON to stderr.
func setupLogging(level string) error {
	logLevel := slog.LevelInfo
	if level != "" {
		if err := logLevel.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	if logLevel == slog.LevelDebug {
		modulePrefix := getModulePrefix()

		replacer := func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = cleanSourcePath(source.File, modulePrefix)
				}
			}
			if err, ok := a.Value.Any().(error); ok {
				aErr := tint.Err(err)
				aErr.Key = a.Key
				return aErr
			}
			return a
		}

		slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:       slog.LevelDebug,
			TimeFormat:  time.TimeOnly,
			ReplaceAttr: replacer,
			AddSource:   true,
		})))
		slog.Debug("debug logging enabled")
		return nil
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
	return nil
}

// getModulePrefix returns "/<last module path element>/" for trimming source paths
func getModulePrefix() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path == "" {
		if wd, err := os.Getwd(); err == nil {
			return "/" + filepath.Base(wd) + "/"
		}
		return "/popx/"
	}

	parts := strings.Split(info.Main.Path, "/")
	return "/" + parts[len(parts)-1] + "/"
}

// cleanSourcePath keeps the part of filePath after the module prefix
func cleanSourcePath(filePath, modulePrefix string) string {
	parts := strings.Split(filePath, modulePrefix)
	if len(parts) == 2 {
		return parts[1]
	}

	if idx := strings.LastIndex(filePath, "/go/src/"); idx != -1 {
		return filePath[idx+8:]
	}
	if idx := strings.LastIndex(filePath, "/src/"); idx != -1 {
		return filePath[idx+5:]
	}
	return filePath
}
