// Package session holds the state of the Home and Chat views.
//
// State changes are split in two halves: a method that validates the current state and
// returns the request to issue, and an Apply method that takes the outcome of that request.
// The terminal UI issues the request inside a tea.Cmd between the two halves. Synchronous
// callers (the REPL and the web UI) use the helpers in sync.go, which do both.
package session
