package envvars_test

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"env-binder/envvars"
)

// plain sticks to what both binders read the same way: exported fields,
// canonical bools and unspaced lists.
type plain struct {
	Host    string        `env:"HOST"`
	Port    uint16        `env:"PORT"`
	Verbose bool          `env:"VERBOSE"`
	Ratio   float32       `env:"RATIO"`
	Offset  int64         `env:"OFFSET"`
	Timeout time.Duration `env:"TIMEOUT"`
	Peers   []string      `env:"PEERS"`
	Ports   []int         `env:"PORTS"`
	Since   time.Time     `env:"SINCE"`
	ID      uuid.UUID     `env:"ID"`
}

func TestPopulate_AgreesWithCaarlos0Env(t *testing.T) {
	t.Parallel()

	environments := []map[string]string{
		{
			"HOST":    "db.internal",
			"PORT":    "5432",
			"VERBOSE": "true",
			"RATIO":   "0.25",
			"OFFSET":  "-17",
			"TIMEOUT": "2m30s",
			"PEERS":   "a,b,c",
			"PORTS":   "80,443",
			"SINCE":   "2024-03-01T12:30:00Z",
			"ID":      "0b5a3f8e-2a1c-4d6e-9f70-1a2b3c4d5e6f",
		},
		{
			"HOST":    "",
			"PORT":    "0",
			"VERBOSE": "false",
			"RATIO":   "1e3",
			"OFFSET":  "9223372036854775807",
			"TIMEOUT": "0s",
			"PEERS":   "solo",
			"PORTS":   "1",
			"SINCE":   "1999-12-31T23:59:59.5+02:00",
			"ID":      "00000000-0000-0000-0000-000000000000",
		},
	}

	for _, environ := range environments {
		var want plain
		require.NoError(t, env.ParseWithOptions(&want, env.Options{Environment: environ}))

		var got plain
		require.NoError(t, envvars.Populate(&got, envvars.WithSource(envvars.Map(environ))))

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Populate mismatch (-caarlos0/env +envvars):\n%s", diff)
		}
	}
}
