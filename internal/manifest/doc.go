// Package manifest reads, rewrites and validates the package.json written
// into a scaffolded project. Documents keep their top-level key order so the
// generated file reads like the template it came from.
package manifest
