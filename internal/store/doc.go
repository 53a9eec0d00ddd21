// Package store abstracts the password store behind an Exists/Read
// capability so the matching algorithm can be tested against an in-memory
// fake. The real implementation, PassStore, reads a pass(1) directory
// layout and shells out to gpg for decryption.
package store
