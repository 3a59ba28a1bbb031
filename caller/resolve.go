package caller

import (
	"runtime"

	"env-binder/internal/match"
)

const (
	maxDepth       = 128
	maxSuggestions = 3
)

// Find walks the call stack from the top, starting skip frames above its caller,
// and returns the first frame whose function matches token.
func Find(token string, skip int) (Frame, error) {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var seen []string
	for n > 0 {
		fr, more := frames.Next()

		f := ParseFunction(fr.Function)
		f.File, f.Line = fr.File, fr.Line

		if f.Matches(token) {
			return f, nil
		}

		seen = append(seen, f.Name)
		if !more {
			break
		}
	}

	return Frame{}, &ResolutionError{
		Token:       token,
		Suggestions: match.Suggest(token, seen, maxSuggestions),
		Err:         ErrNoFrame,
	}
}

// Resolve is Find restricted to methods: the matching frame must have a receiver type.
func Resolve(token string, skip int) (Frame, error) {
	f, err := Find(token, skip+1)
	if err != nil {
		return Frame{}, err
	}

	if f.Receiver == "" {
		return Frame{}, &ResolutionError{Token: token, Function: f.Function, Err: ErrNoReceiver}
	}

	return f, nil
}
