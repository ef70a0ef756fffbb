// Package cli provides the interactive terminal client of the voting portal.
//
// It drives the same AuthService and state database as the web portal, so a
// session started here is visible to the browser and the other way round.
// A background watcher pings the API and reports online/offline transitions.
//
// Commands: help, register, login, logout, whoami, status, reset, exit|quit.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
