// Package credential implements the git credential helper line protocol.
//
// Requests arrive on stdin as "key=value" lines terminated by a blank line
// or end of stream. Responses are zero or more "key=value" lines on stdout;
// no output means no credential was found.
//
// See gitcredentials(7) for the protocol contract.
package credential
