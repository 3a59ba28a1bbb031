// Package gen writes binding tables for the //env:var variables found by package analyze.
//
// Output is produced with text/template and normalized by go/format. For each
// package it is a single file declaring:
//   - a *envvars.Table with one BindVar entry per active variable
//   - a function populating the table from the environment
package gen
