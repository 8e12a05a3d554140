// Package config loads and validates the generation configuration
// consumed by the batch studio.
//
// Files are read through viper (YAML by default), merged over documented
// defaults, and validated eagerly: any unrecognized pattern kind, palette
// name, or generation method fails loading with ErrConfiguration before a
// single artwork is generated. A missing file is not an error — defaults
// then apply — but a malformed or invalid one is fatal.
package config
