package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted leaves the code that go/format rejected next to the intended
// output, as name.unformatted.go. Failures are ignored by callers.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if dir == "" || filename == "" {
		return nil
	}

	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"
	return os.WriteFile(filepath.Join(dir, debugName), content, filePerm)
}
