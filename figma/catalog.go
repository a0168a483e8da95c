package figma

// StyleType is the kind of a published style and the key space of a vector
// node's styles map.
type StyleType string

const (
	StyleFill   StyleType = "FILL"
	StyleText   StyleType = "TEXT"
	StyleEffect StyleType = "EFFECT"
	StyleGrid   StyleType = "GRID"
)

// Style is a catalog entry describing a published style.
type Style struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StyleType   StyleType `json:"styleType"`
}

// Component is a catalog entry describing a main component.
type Component struct {
	Key                string              `json:"key"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	DocumentationLinks []DocumentationLink `json:"documentationLinks"`
	ComponentSetID     *string             `json:"componentSetId,omitempty"`
}

type ComponentSet struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalogs are the flat id-keyed maps shared by a file and each requested
// node of a file nodes response. Maps are never nil after decoding.
type Catalogs struct {
	Components    map[string]Component    `json:"components"`
	ComponentSets map[string]ComponentSet `json:"componentSets"`
	Styles        map[string]Style        `json:"styles"`
}

// Component returns the component with the given id.
func (c *Catalogs) Component(id string) (Component, bool) {
	v, ok := c.Components[id]
	return v, ok
}

// ComponentOf resolves the component an instance was created from.
func (c *Catalogs) ComponentOf(n *InstanceNode) (Component, bool) {
	if n == nil {
		return Component{}, false
	}
	return c.Component(n.ComponentID)
}

// ComponentSet returns the component set with the given id.
func (c *Catalogs) ComponentSet(id string) (ComponentSet, bool) {
	v, ok := c.ComponentSets[id]
	return v, ok
}

// ComponentSetOf resolves the set a component belongs to, if any.
func (c *Catalogs) ComponentSetOf(comp Component) (ComponentSet, bool) {
	if comp.ComponentSetID == nil {
		return ComponentSet{}, false
	}
	return c.ComponentSet(*comp.ComponentSetID)
}

// Style returns the style with the given id.
func (c *Catalogs) Style(id string) (Style, bool) {
	v, ok := c.Styles[id]
	return v, ok
}

// StylesOf resolves the styles map of a vector-level node. Ids missing from
// the catalog are left out.
func (c *Catalogs) StylesOf(n Vectorish) map[StyleType]Style {
	out := map[StyleType]Style{}
	if n == nil {
		return out
	}
	for kind, id := range n.Vector().Styles {
		if s, ok := c.Styles[id]; ok {
			out[kind] = s
		}
	}
	return out
}

func emptyCatalogs() Catalogs {
	return Catalogs{
		Components:    map[string]Component{},
		ComponentSets: map[string]ComponentSet{},
		Styles:        map[string]Style{},
	}
}
