package envvars

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var targets = struct {
	sync.RWMutex
	byType map[string]any
}{byType: map[string]any{}}

// Register makes target, a pointer to a named struct, the one resolved
// for methods declared on its type. A later registration of the same type replaces it.
func Register(target any) error {
	key, err := targetKey(target)
	if err != nil {
		return err
	}

	targets.Lock()
	defer targets.Unlock()
	targets.byType[key] = target

	return nil
}

// Unregister drops the registration of target's type.
func Unregister(target any) {
	key, err := targetKey(target)
	if err != nil {
		return
	}

	targets.Lock()
	defer targets.Unlock()
	delete(targets.byType, key)
}

func lookupTarget(owner string) (any, bool) {
	targets.RLock()
	defer targets.RUnlock()

	target, ok := targets.byType[owner]
	return target, ok
}

func targetKey(target any) (string, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return "", fmt.Errorf("%w, got %T", ErrInvalidTarget, target)
	}

	t := v.Elem().Type()
	name, _, _ := strings.Cut(t.Name(), "[")
	if name == "" {
		return "", fmt.Errorf("%w: %s is not a named type", ErrInvalidTarget, t)
	}

	return t.PkgPath() + "." + name, nil
}
