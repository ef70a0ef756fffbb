// Package kv is the process-wide key/value store behind the portal's
// persistent client state.
//
// Two implementations exist: SQLiteRepository, backed by the local state
// database, and MemoryRepository, used by tests and ephemeral runs. Both are
// safe for concurrent use and both return (nil, nil) from Get for a missing key.
package kv
