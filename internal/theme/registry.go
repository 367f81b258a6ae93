package theme

import (
	"fmt"
	"sort"
)

// Registry maps theme keys to themes. Keys are case-insensitive.
// A Registry is not safe for concurrent Register calls; Resolve may be called
// concurrently once registration is finished.
type Registry struct {
	themes map[string]Theme
	def    string
}

// NewRegistry creates a registry whose fallback is def.
func NewRegistry(def Theme) *Registry {
	r := &Registry{themes: make(map[string]Theme), def: normalizeKey(def.Name)}
	r.put(def)
	return r
}

func (r *Registry) put(t Theme) {
	r.themes[normalizeKey(t.Name)] = t
}

// Register validates t and adds it, replacing any theme with the same key.
func (r *Registry) Register(t Theme) error {
	if err := Validate(t); err != nil {
		return err
	}
	if normalizeKey(t.Name) == r.def {
		return fmt.Errorf("%w %q: the fallback theme cannot be replaced", ErrInvalidTheme, t.Name)
	}
	r.put(t)
	return nil
}

// Lookup returns the theme registered under key, if any.
func (r *Registry) Lookup(key string) (Theme, bool) {
	t, ok := r.themes[normalizeKey(key)]
	return t, ok
}

// Resolve returns the theme for key, or the fallback theme when key is empty
// or unknown. It never fails.
func (r *Registry) Resolve(key string) Theme {
	if t, ok := r.Lookup(key); ok {
		return t
	}
	return r.themes[r.def]
}

// Fallback returns the theme used for unknown keys.
func (r *Registry) Fallback() Theme {
	return r.themes[r.def]
}

// Names returns all keys, sorted, with the fallback first.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for k := range r.themes {
		if k != r.def {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return append([]string{r.def}, names...)
}

// Resolve looks key up in the bundled themes.
func Resolve(key string) Theme {
	return Builtin().Resolve(key)
}
