package names

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicate is returned when a name is already registered.
	ErrDuplicate = errors.New("duplicate name")
	// ErrNotRegistered is returned when renaming a name that is not registered.
	ErrNotRegistered = errors.New("name not registered")
	// ErrEmptyName is returned for the empty name.
	ErrEmptyName = errors.New("empty name")
)

// Dictionary maps names to values. Lookups are exact: no case folding and no
// unicode normalisation.
type Dictionary[T any] struct {
	entries map[string]T
}

// NewDictionary returns an empty dictionary.
func NewDictionary[T any]() *Dictionary[T] {
	return &Dictionary[T]{entries: make(map[string]T)}
}

// Register adds name -> v. It fails if name is empty or taken.
func (d *Dictionary[T]) Register(name string, v T) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := d.entries[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	d.entries[name] = v
	return nil
}

// Unregister removes name. Removing an absent name is a no-op; the result
// reports whether anything was removed.
func (d *Dictionary[T]) Unregister(name string) bool {
	if _, ok := d.entries[name]; !ok {
		return false
	}
	delete(d.entries, name)
	return true
}

// Resolve returns the value registered under name.
func (d *Dictionary[T]) Resolve(name string) (T, bool) {
	v, ok := d.entries[name]
	return v, ok
}

// IsTaken reports whether name is registered.
func (d *Dictionary[T]) IsTaken(name string) bool {
	_, ok := d.entries[name]
	return ok
}

// Rename moves the entry for oldName to newName in one step. On error the
// dictionary is unchanged. Renaming to the same name is a no-op.
func (d *Dictionary[T]) Rename(oldName, newName string) error {
	v, ok := d.entries[oldName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotRegistered, oldName)
	}
	if oldName == newName {
		return nil
	}
	if newName == "" {
		return ErrEmptyName
	}
	if _, taken := d.entries[newName]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicate, newName)
	}
	delete(d.entries, oldName)
	d.entries[newName] = v
	return nil
}

// Names returns all registered names in lexical order.
func (d *Dictionary[T]) Names() []string {
	out := make([]string, 0, len(d.entries))
	for n := range d.entries {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len is the number of entries.
func (d *Dictionary[T]) Len() int { return len(d.entries) }
