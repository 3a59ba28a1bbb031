// Package caller resolves the type that declares a function on the current call stack.
//
// Runtime function names have the shapes
//
//	example.com/app/config.(*Settings).Load
//	example.com/app/config.Settings.Load
//	example.com/app/config.Load
//	example.com/app/config.(*Settings).Load.func1
//
// and are split into package path, receiver type and function name.
package caller

import (
	"runtime"
	"strings"
)

// Frame is one parsed stack frame.
type Frame struct {
	Function string // full runtime name
	Package  string // import path of the declaring package
	Receiver string // receiver type name without pointer or type arguments; empty for plain functions
	Pointer  bool   // receiver is a pointer
	Name     string // function or method name, including closure suffixes such as ".func1"
	File     string
	Line     int
}

// ParseFunction splits a runtime function name.
func ParseFunction(fn string) Frame {
	f := Frame{Function: fn, Name: fn}

	slash := strings.LastIndex(fn, "/")
	dot := strings.Index(fn[slash+1:], ".")
	if dot < 0 {
		return f
	}

	// the linker escapes dots in the last path element
	f.Package = strings.ReplaceAll(fn[:slash+1+dot], "%2e", ".")
	rest := strings.ReplaceAll(fn[slash+1+dot+1:], "[...]", "")

	if strings.HasPrefix(rest, "(*") {
		if end := strings.Index(rest, ")."); end > 0 {
			f.Receiver = stripTypeArgs(rest[2:end])
			f.Pointer = true
			rest = rest[end+2:]
		}
	} else if recv, name, ok := strings.Cut(rest, "."); ok && isMethodName(name) && recv != "glob" {
		f.Receiver = stripTypeArgs(recv)
		rest = name
	}

	f.Name = rest
	return f
}

// Matches reports whether token names the function of the frame,
// either bare ("Load") or qualified by its receiver ("Settings.Load").
func (f Frame) Matches(token string) bool {
	if token == "" {
		return false
	}

	return token == f.Name || (f.Receiver != "" && token == f.Receiver+"."+f.Name)
}

// Owner returns the qualified declaring type, "example.com/app/config.Settings",
// or an empty string for package-level functions.
func (f Frame) Owner() string {
	if f.Receiver == "" {
		return ""
	}

	return f.Package + "." + f.Receiver
}

// Current returns the frame skip levels above its caller; Current(0) is the caller itself.
func Current(skip int) Frame {
	pcs := make([]uintptr, 1)
	if runtime.Callers(skip+2, pcs) == 0 {
		return Frame{}
	}

	fr, _ := runtime.CallersFrames(pcs).Next()
	f := ParseFunction(fr.Function)
	f.File, f.Line = fr.File, fr.Line

	return f
}

func stripTypeArgs(recv string) string {
	if i := strings.IndexByte(recv, '['); i >= 0 {
		return recv[:i]
	}

	return recv
}

// isMethodName tells "T.M" apart from "F.func1" and "init.0".
func isMethodName(name string) bool {
	head, _, _ := strings.Cut(name, ".")
	if head == "" || isDigits(head) {
		return false
	}

	for _, prefix := range []string{"func", "deferwrap", "gowrap"} {
		if n, ok := strings.CutPrefix(head, prefix); ok && isDigits(n) {
			return false
		}
	}

	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
