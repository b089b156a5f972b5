package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/l1jgo/tickworld/internal/component"
	"github.com/l1jgo/tickworld/internal/core/ecs"
)

// Scene is a data file describing the initial resources and entities of a
// world. Every resource and component entry is a mapping with a kind key;
// the remaining keys are decoded into the component registered for that kind:
//
//	resources:
//	  - kind: Gravity
//	    g: 9.8
//	entities:
//	  - name: player
//	    components:
//	      - {kind: Health, value: 100, max: 100}
//	      - {kind: Position, x: 0, y: 0}
type Scene struct {
	Name      string       `yaml:"name"`
	Resources []yaml.Node  `yaml:"resources"`
	Entities  []EntitySpec `yaml:"entities"`
}

// EntitySpec is one entity to spawn. Name is only used in error messages.
type EntitySpec struct {
	Name       string      `yaml:"name"`
	Components []yaml.Node `yaml:"components"`
}

type kindHeader struct {
	Kind string `yaml:"kind"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene from YAML bytes.
func Parse(raw []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Count returns the number of entities the scene spawns.
func (s *Scene) Count() int {
	return len(s.Entities)
}

// Spawn adds the scene's resources and entities to w. Every entry is decoded
// before the world is touched, so a malformed scene leaves w unchanged. It
// returns the spawned entities in file order.
func (s *Scene) Spawn(w *ecs.World, kinds *component.Registry) ([]ecs.Entity, error) {
	if !w.Initialized() {
		return nil, fmt.Errorf("spawn scene %q: %w", s.Name, ecs.ErrUninitialized)
	}

	resources := make([]ecs.Resource, 0, len(s.Resources))
	for i := range s.Resources {
		r, err := decode(&s.Resources[i], kinds)
		if err != nil {
			return nil, fmt.Errorf("resource #%d: %w", i, err)
		}
		resources = append(resources, r)
	}

	pending := make([][]ecs.Component, 0, len(s.Entities))
	for i, spec := range s.Entities {
		comps := make([]ecs.Component, 0, len(spec.Components))
		for j := range spec.Components {
			c, err := decode(&spec.Components[j], kinds)
			if err != nil {
				return nil, fmt.Errorf("entity #%d %q component #%d: %w", i, spec.Name, j, err)
			}
			comps = append(comps, c)
		}
		pending = append(pending, comps)
	}

	for _, r := range resources {
		w.AddResource(r)
	}
	spawned := make([]ecs.Entity, 0, len(pending))
	for _, comps := range pending {
		e := w.NewEntity()
		for _, c := range comps {
			w.AddComponent(e, c)
		}
		spawned = append(spawned, e)
	}
	return spawned, nil
}

// decode builds the component named by the node's kind key.
func decode(node *yaml.Node, kinds *component.Registry) (ecs.Component, error) {
	var h kindHeader
	if err := node.Decode(&h); err != nil {
		return nil, err
	}
	if h.Kind == "" {
		return nil, fmt.Errorf("line %d: missing kind", node.Line)
	}
	c := kinds.New(ecs.Kind(h.Kind))

	attrs, ok := c.(*component.Attributes)
	if !ok {
		if err := node.Decode(c); err != nil {
			return nil, fmt.Errorf("decode %s: %w", h.Kind, err)
		}
		return c, nil
	}

	var fields map[string]any
	if err := node.Decode(&fields); err != nil {
		return nil, fmt.Errorf("decode %s: %w", h.Kind, err)
	}
	for k, v := range fields {
		if k == "kind" {
			continue
		}
		switch n := v.(type) {
		case int:
			attrs.SetField(k, float64(n))
		case float64:
			attrs.SetField(k, n)
		default:
			return nil, fmt.Errorf("line %d: %s.%s is not numeric", node.Line, h.Kind, k)
		}
	}
	return attrs, nil
}
