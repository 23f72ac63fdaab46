// mechcfg validates atmospheric chemistry mechanism configurations.
//
// It reads the v1 and development single-document formats and the legacy
// v0 (CAMP) directory format, reports every problem with its source
// position, and can watch a configuration and re-validate it on change.
//
// Usage:
//
//	# Validate one or more configurations
//	mechcfg validate mechanism.yaml
//
//	# Show source lines around each error
//	mechcfg validate --context mechanism.yaml
//
//	# Validate every document under a directory
//	mechcfg lint --dir configs/
//
//	# Print the parsed mechanism as JSON
//	mechcfg parse mechanism.yaml
//
//	# Re-validate on change and serve /metrics
//	mechcfg watch mechanism.yaml
//
//	# Show past validation runs
//	mechcfg history list --invalid
package main

import "os"

func main() {
	os.Exit(Execute())
}
