// Package scaffold materializes a project template into a target directory.
// Templates are embedded in the binary. While copying, files named with a
// ".template" marker get their {{name}} placeholder replaced, underscore
// stand-ins such as _gitignore are written under their dotfile names, and
// package.json is rewritten so its name matches the new project.
package scaffold
