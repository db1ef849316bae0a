// Package config provides configuration management for namecheck.
//
// Configuration is read by Viper from config.yaml in the current directory
// or in $XDG_CONFIG_HOME/namecheck, with NAMECHECK_* environment
// variables taking precedence over the file. Every key has a default, so
// namecheck runs without any configuration file:
//
//	timeout: 8s
//	user_agent: namecheck/<version> (go net/http)
//	max_conns_per_host: 16
//	platforms: []            # empty means every supported platform
//	delegated:
//	  enabled: true
//	  concurrency: 4
//	endpoints:               # base URL overrides, keyed by platform
//	  github: https://github.com
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init(version)
//	cfg, err := config.Load(flagPath)
//
// # Validation
//
// [Load] validates automatically. [Validate] returns every problem found
// rather than stopping at the first:
//
//	for _, e := range config.Validate(cfg) {
//	    fmt.Println(e)
//	}
//
// The loaded Config is converted into the options of the probe and lookup
// layers with [Config.ProbeOptions] and [Config.WebOptions].
package config
