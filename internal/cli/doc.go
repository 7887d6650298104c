// Package cli defines the cobra command for create-express. The command only
// parses flags, loads settings and wires the terminal to the create package,
// which holds the scaffolding flow.
package cli
