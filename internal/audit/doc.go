// Package audit provides an optional append-only JSONL log of credential
// lookups. Each record carries a UUID, timestamp, request host/path, and
// the matched candidate. Passwords and usernames are never written.
//
// Auditing is disabled by default and enabled via the [audit] section of
// config.toml. Writes are best-effort and never fail a lookup.
package audit
