// Package config holds the settings of the mechcfg tool: parser limits,
// logging, metrics, tracing, the validation history, the parse cache, watch
// mode and git access. Mechanism documents are not configured here.
//
// # Loading
//
// A configuration file is YAML, or TOML when its name ends in ".toml":
//
//	cfg, err := config.LoadConfig("mechcfg.yaml")
//
// Fields left out of the file keep their defaults (see defaults.go).
//
// # Environment Variable Overrides
//
// LoadConfigWithEnvOverrides applies MECHCFG_SECTION_FIELD variables on top
// of the file, for example:
//
//   - MECHCFG_LOGGING_LEVEL overrides logging.level
//   - MECHCFG_HISTORY_DRIVER overrides history.driver
//   - MECHCFG_GIT_TOKEN overrides git.token
//
// Values that do not parse for their field are ignored.
//
// # Precedence
//
//  1. Default values
//  2. Values from the file
//  3. Environment variable overrides
//  4. Validation, which reports every invalid field at once
//
// # Singleton
//
//	if err := config.Initialize(path); err != nil {
//	    return err
//	}
//	cfg := config.GetConfig()
//
// Library code should take a *Config explicitly; the singleton exists for
// the CLI.
package config
