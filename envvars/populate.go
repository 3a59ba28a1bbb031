package envvars

import (
	"reflect"

	"env-binder/binding"
	"env-binder/caller"
	"env-binder/discover"
)

// Populate assigns every declared field of target, which must be a non-nil pointer to a struct.
// The bindings are discovered anew on every call.
func Populate(target any, opts ...Option) error {
	m, err := discover.Bindings(reflect.ValueOf(target))
	if err != nil {
		return err
	}

	return populate(m, newOptions(opts).source)
}

// PopulateCaller populates the registered target whose type declares the calling method:
//
//	func (s *settings) Load() error {
//		return envvars.PopulateCaller()
//	}
//
// The type must have been registered with [Register]. Prefer [Populate] when the
// target is at hand; resolution walks the call stack and fails with a
// *ResolutionError when it can't identify the type.
func PopulateCaller(opts ...Option) error {
	return populateNamed(caller.Current(1).Name, 1, opts)
}

// PopulateNamed is PopulateCaller with an explicit caller token: the name of a method
// on the current call stack, bare ("Load") or receiver-qualified ("settings.Load").
// The frame nearest the top of the stack wins.
func PopulateNamed(token string, opts ...Option) error {
	return populateNamed(token, 1, opts)
}

func populateNamed(token string, skip int, opts []Option) error {
	f, err := caller.Resolve(token, skip+1)
	if err != nil {
		return err
	}

	target, ok := lookupTarget(f.Owner())
	if !ok {
		return &ResolutionError{Token: token, Function: f.Function, Err: ErrNotRegistered}
	}

	return Populate(target, opts...)
}

func populate(m *binding.Map, src Source) error {
	for _, f := range m.Fields() {
		raw, ok := src.Lookup(f.Name)

		v, err := f.Convert(raw, ok)
		if err != nil {
			return err
		}

		f.Set(v)
	}

	return nil
}
