package plugin

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry resolves plugin identifiers to schemas.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]Schema // canonical name -> schema
	aliases map[string]string // alias -> canonical name
}

// NewRegistry creates a new empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]Schema),
		aliases: make(map[string]string),
	}
}

// NewBuiltinRegistry returns a registry holding every plugin sitecfg knows.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, s := range builtinSchemas() {
		if err := r.Register(s); err != nil {
			panic(err) // builtin table is static
		}
	}
	return r
}

var defaultRegistry = sync.OnceValue(NewBuiltinRegistry)

// Default returns the shared builtin registry. It is never mutated after construction.
func Default() *Registry {
	return defaultRegistry()
}

// Register adds a schema. Names and aliases must be unique across the registry.
func (r *Registry) Register(s Schema) error {
	if s.Name == "" {
		return fmt.Errorf("cannot register plugin schema without a name")
	}
	if s.New == nil {
		return fmt.Errorf("plugin %s: schema has no options constructor", s.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.known(s.Name) {
		return fmt.Errorf("plugin %s already registered", s.Name)
	}
	for _, a := range s.Aliases {
		if a == s.Name || r.known(a) {
			return fmt.Errorf("plugin %s: alias %s already registered", s.Name, a)
		}
	}

	r.schemas[s.Name] = s
	for _, a := range s.Aliases {
		r.aliases[a] = s.Name
	}
	return nil
}

func (r *Registry) known(id string) bool {
	if _, ok := r.schemas[id]; ok {
		return true
	}
	_, ok := r.aliases[id]
	return ok
}

// Canonical maps an identifier or alias to its canonical name.
// Unknown identifiers are returned trimmed but otherwise unchanged.
func (r *Registry) Canonical(id string) string {
	id = strings.TrimSpace(id)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name, ok := r.aliases[id]; ok {
		return name
	}
	return id
}

// Lookup returns the schema for an identifier or alias.
func (r *Registry) Lookup(id string) (Schema, bool) {
	name := r.Canonical(id)
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// Has reports whether the identifier resolves to a schema.
func (r *Registry) Has(id string) bool {
	_, ok := r.Lookup(id)
	return ok
}

// List returns all schemas ordered by name.
func (r *Registry) List() []Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Schema, 0, len(r.schemas))
	for _, s := range r.schemas {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Decode decodes the options node of a declaration. Identifiers without a
// schema decode into GenericOptions.
func (r *Registry) Decode(id string, node *yaml.Node) (Options, error) {
	if s, ok := r.Lookup(id); ok {
		return s.Decode(node)
	}
	return genericSchema(id, KindExternal, "").Decode(node)
}

func builtinSchemas() []Schema {
	return []Schema{
		zoomingSchema(),
		containerSchema(),
		genericSchema("@vuepress/back-to-top", KindUI, "Show a back-to-top button", "back-to-top"),
		genericSchema("@vuepress/medium-zoom", KindUI, "Zoom images with medium-zoom", "medium-zoom"),
		genericSchema("@vuepress/last-updated", KindMeta, "Show the git last-updated time of a page", "last-updated"),
		genericSchema("@vuepress/pwa", KindUI, "Register a service worker and update popup", "pwa"),
		genericSchema("@vuepress/active-header-links", KindUI, "Track the active header in the sidebar", "active-header-links"),
	}
}
