package worlds

import "sync"

// Registry keys shared between scenes.
const (
	KeyPortfolioWorlds = "portfolioWorlds"
	KeySelectedWorldID = "selectedWorldId"
)

// Registry is process-wide keyed state handed from one scene to the next.
// It outlives every scene.
type Registry struct {
	mu     sync.RWMutex
	values map[string]any
}

func NewRegistry() *Registry {
	return &Registry{values: make(map[string]any)}
}

func (r *Registry) Set(key string, v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if list, ok := v.([]PortfolioWorld); ok {
		v = append([]PortfolioWorld(nil), list...)
	}
	r.values[key] = v
}

func (r *Registry) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// Worlds returns a copy of the registered world list, or nil.
func (r *Registry) Worlds() []PortfolioWorld {
	v, ok := r.Get(KeyPortfolioWorlds)
	if !ok {
		return nil
	}
	list, _ := v.([]PortfolioWorld)
	return append([]PortfolioWorld(nil), list...)
}

// SelectedWorldID returns the id chosen in the menu, or "".
func (r *Registry) SelectedWorldID() string {
	v, ok := r.Get(KeySelectedWorldID)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
