// Package kv provides the durable key-value storage the client persists its
// session data into.
//
// # Contract
//
// Every backend implements Repository:
//
//   - Get returns (nil, nil) when the key is absent.
//   - Set overwrites the whole value; there is no partial update.
//   - Delete is idempotent.
//
// Backend errors are wrapped with the key, e.g. "failed to get kv[users]: ...".
//
// # Backends
//
//   - MemoryRepository   — process-local map, for tests and throwaway runs
//   - FileRepository     — one JSON object file, atomically replaced on write
//   - SQLRepository      — "kv_entries" table on SQLite or PostgreSQL
//   - RedisRepository    — one Redis string per key under a prefix
//   - S3Repository       — one object per key under a prefix (S3 / MinIO)
//
// None of the backends coordinate concurrent writers across processes.
package kv
