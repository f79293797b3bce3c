package play

import (
	"fmt"

	"github.com/annaw245/Software/parameter"
)

// Registry maps play IDs to instances. IDs() is also the selection priority
type Registry struct {
	plays map[ID]Play
	order []ID
}

func NewRegistry(cfg *parameter.Config) *Registry {
	r := &Registry{plays: make(map[ID]Play)}
	r.register(NewHalt(cfg))
	r.register(NewDefense(cfg))
	return r
}

func (r *Registry) register(p Play) {
	r.plays[p.ID()] = p
	r.order = append(r.order, p.ID())
}

func (r *Registry) Get(id ID) (Play, error) {
	p, ok := r.plays[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrUnknownPlay)
	}
	return p, nil
}

// IDs returns registered plays in priority order
func (r *Registry) IDs() []ID {
	out := make([]ID, len(r.order))
	copy(out, r.order)
	return out
}
