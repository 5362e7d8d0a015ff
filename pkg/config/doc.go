// Package config loads typed configuration from environment variables and
// optional .env files.
//
// It combines github.com/joho/godotenv (reading .env files into the process
// environment) with github.com/caarlos0/env/v11 (parsing the environment into
// tagged structs). Each configuration type is parsed once per process and
// cached; use ForceReloadConfig or ResetCache when the environment changes, for
// example in tests.
//
// # Usage
//
//	type Settings struct {
//	    RulesFile string `env:"FORMCHECK_RULES,required"`
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	if err := config.LoadEnv("./.env.local"); err != nil {
//	    log.Fatal(err)
//	}
//	var s Settings
//	config.MustLoad(&s)
//
// # Error Handling
//
//   - ErrParsingConfig: the environment could not be parsed into the struct.
//   - ErrConfigNotLoaded: the cache did not hold the value after parsing.
//   - ErrNilPointer: a nil pointer was passed to Load.
package config
