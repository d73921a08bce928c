// Package config provides configuration management for the zodplay CLI.
//
// # Configuration File
//
// The configuration file is config.yaml, searched in the current directory
// and then in $XDG_CONFIG_HOME/zodplay. Every key can be overridden with a
// ZODPLAY_ prefixed environment variable:
//
//	version: 1
//	program: pnpx openapi-zod-client   # prefix of composed commands
//	sample_input: ./petstore.yaml      # input path shown in composed commands
//	output_path: api.client.ts         # initial output tab
//	preset_template: default           # initial template preset
//
// A missing file is not an error; [Default] values apply.
package config
