// Package notify renders user-facing status lines for provisioning runs.
//
// Every message carries a type (error, warning, activity, skip, success,
// info, title) that maps to a fixed symbol and color, so each provisioning
// step emits a consistent one-line status. Output wraps at the terminal
// width when writing to a TTY and is left verbatim otherwise.
package notify
