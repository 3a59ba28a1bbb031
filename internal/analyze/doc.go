// Package analyze loads Go packages and finds what envbind-gen binds in them.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to collect:
//   - package-level variables annotated with an //env:var NAME directive
//   - struct types whose fields carry env tags
//
// Every binding is checked against the shapes the converter supports, and
// duplicate names are reported the way the runtime resolves them: first wins.
package analyze
