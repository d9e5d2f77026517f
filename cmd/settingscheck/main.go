package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	settings "github.com/com-4/poor-richards-settings"
	"github.com/com-4/poor-richards-settings/internal/logging"
	"github.com/com-4/poor-richards-settings/internal/schemafile"
)

// Exit codes: 0 all required settings resolved, 1 required settings
// missing, 2 schema or coercion failure.
const (
	exitOK       = 0
	exitMissing  = 1
	exitBadInput = 2
)

func main() {
	app := kingpin.New("settingscheck", "Verifies that the process environment satisfies a declared settings schema")
	schemaPath := app.Flag("schema", "Path to the YAML settings schema").Required().String()
	prefixFlag := app.Flag("prefix", "Override the schema's environment variable prefix").String()
	debug := app.Flag("debug", "Enable debug logging, including bind-time tracing").Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := logging.New(*debug)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	os.Exit(run(*schemaPath, *prefixFlag, logger))
}

func run(schemaPath, prefixOverride string, logger *zap.Logger) int {
	decl, prefix, err := schemafile.Load(schemaPath)
	if err != nil {
		logger.Error("failed to load settings schema", zap.Error(err))
		return exitBadInput
	}
	if prefixOverride != "" {
		prefix = prefixOverride
	}

	if err := decl.Bind(prefix, settings.WithLogger(logger)); err != nil {
		var cerr *settings.CoercionError
		if errors.As(err, &cerr) {
			logger.Error("environment value cannot be coerced",
				zap.String("field", cerr.Field),
				zap.String("value", cerr.Value),
				zap.String("type", cerr.Kind.String()))
		} else {
			logger.Error("binding failed", zap.Error(err))
		}
		return exitBadInput
	}

	missing := decl.Missing()
	for _, name := range missing {
		logger.Error("required setting is missing", zap.String("field", name))
	}
	if len(missing) > 0 {
		return exitMissing
	}

	for _, f := range decl.Fields() {
		logger.Info("setting resolved",
			zap.String("field", f.Name()),
			zap.String("value", settings.MaskValue(f.Name(), f.Value())))
	}
	return exitOK
}
