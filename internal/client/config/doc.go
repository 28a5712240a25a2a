// Package config loads runtime configuration for the interviewdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables prefixed with INTERVIEWDESK_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-s string   storage backend: memory, file, sqlite, postgres, redis, s3
//	-p string   sqlite DSN or JSON store file path
//	-d string   PostgreSQL DSN
//	-r string   Redis address (host:port)
//	-t int      simulated auth latency (milliseconds)
//	-x string   password scheme: argon2id or plaintext
//	-l string   log level: debug, info, warn, error
//	-m string   metrics listen address (empty disables /metrics)
//
// # JSON schema
//
// Durations accept either strings like "800ms" or integer nanoseconds:
//
//	{
//	  "storage_backend": "redis",
//	  "redis_addr": "127.0.0.1:6379",
//	  "auth_delay": "800ms"
//	}
//
// Call (*Config).Validate after loading; LoadConfig itself only panics on
// unreadable sources, matching the flag package's fail-fast behaviour.
package config
