// Package create drives one scaffolding run from the target directory to the
// closing instructions. Each step either resolves a value, asking the user
// when flags don't settle it, or ends the run as cancelled. A cancelled run
// is not an error and leaves any files already written in place.
package create
