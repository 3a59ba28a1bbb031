// Package binding holds the declarative side of environment binding:
// the name a field is bound to, the descriptor of a bound field and the
// ordered map of bindings built for one population pass.
package binding

import (
	"reflect"
	"strings"
	"unicode"
)

// TagKey is the struct tag carrying the variable name: `env:"LISTEN_ADDR"`.
const TagKey = "env"

// DirectivePrefix starts the comment line that binds a package-level variable:
//
//	//env:var LISTEN_ADDR
//	var listenAddr string
//
// The lowercase word after the colon makes gofmt treat the line as a directive
// and leave it untouched.
const DirectivePrefix = "//env:var"

// Declaration names the environment variable a field is populated from.
type Declaration struct {
	Name string
}

// Lookup reads the declaration from a struct tag. An empty or missing name means no declaration.
func Lookup(tag reflect.StructTag) (Declaration, bool) {
	name, ok := tag.Lookup(TagKey)
	if !ok {
		return Declaration{}, false
	}

	return declare(name)
}

// ParseDirective reads the declaration from a single comment line. The name is
// one word separated from the prefix by blanks.
func ParseDirective(line string) (Declaration, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), DirectivePrefix)
	if !ok || rest == "" || !unicode.IsSpace(rune(rest[0])) {
		return Declaration{}, false
	}

	if strings.IndexFunc(strings.TrimSpace(rest), unicode.IsSpace) >= 0 {
		return Declaration{}, false
	}

	return declare(rest)
}

func declare(name string) (Declaration, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Declaration{}, false
	}

	return Declaration{Name: name}, true
}
