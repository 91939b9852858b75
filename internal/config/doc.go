// Package config loads loom.json, the project configuration consumed
// by the loom CLI: inspector address and snapshot storage settings.
package config
