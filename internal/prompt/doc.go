// Package prompt implements the interactive questions asked while
// scaffolding: free-text input with a default and a validator, and a
// numbered single-choice menu. Every answer is a Result that either carries
// a value or marks the question as cancelled (end of input). Callers return
// early on cancellation instead of treating it as an error.
package prompt
