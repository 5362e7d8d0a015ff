// Package logger builds *slog.Logger instances from functional options and
// provides attribute constructors with consistent key names.
//
// New applies the options to a default configuration (JSON to stdout at info
// level) and returns a logger backed by slog.NewJSONHandler or
// slog.NewTextHandler. WithDevelopment and WithProduction set sensible
// presets; WithEnvironment chooses between them from a string such as the
// value of an APP_ENV variable. Config is the env-tagged form of the same
// choice, with LOG_LEVEL and LOG_FORMAT overrides validated by Config.Options.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "formcheck"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Warn("rule configuration error",
//	    logger.FormID(id),
//	    logger.Path("user.email"),
//	    logger.Rule("email"),
//	    logger.Error(err),
//	)
//
// Library code that accepts an optional logger falls back to Discard.
//
// # Attributes
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally. FormID, Path, Paths, Rule, State, Count, File,
// Component and Event fix the key names used across the module.
package logger
