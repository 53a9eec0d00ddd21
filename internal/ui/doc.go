// Package ui provides semantic terminal formatting for human-facing output.
//
// Formatters carry both a color and a plain-text fallback, so output stays
// readable when color is disabled via NO_COLOR or a dumb terminal.
//
// Only the doctor command and diagnostics use this package; protocol output
// is never formatted.
package ui
