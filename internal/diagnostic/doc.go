// Package diagnostic collects the findings of envbind-gen while it analyzes a package.
//
// Findings come in three severities:
//   - errors stop generation for the package (unsupported variable types, malformed directives)
//   - warnings are reported but generation proceeds (duplicate names, misplaced directives)
//   - infos are only shown with -v
package diagnostic
