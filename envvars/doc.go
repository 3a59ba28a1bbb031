// Package envvars populates fields from environment variables.
//
// Fields declare the variable they are bound to with an `env` struct tag:
//
//	var Settings struct {
//		Addr    string        `env:"LISTEN_ADDR"`
//		Debug   bool          `env:"DEBUG"`
//		Timeout time.Duration `env:"TIMEOUT"`
//		Peers   []string      `env:"PEERS"`
//	}
//
//	if err := envvars.Populate(&Settings); err != nil {
//		log.Fatal(err)
//	}
//
// Package-level variables are bound through a [Table], written by hand or
// generated by envbind-gen from //env:var NAME directives.
//
// Conversion rules:
//   - bool fields are true only for "true" in any letter case; anything else,
//     including an unset variable, is false;
//   - registered enumerations (see package enum) match member names ignoring case;
//   - slices and arrays are split on commas and every element is trimmed;
//   - other scalars are parsed without regard to the host locale.
//
// Population is one linear pass in field declaration order. It stops at the
// first failure and leaves the fields assigned before it in place.
// Populate does no locking: run it once, before the fields are read.
package envvars
