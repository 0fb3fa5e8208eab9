package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/elliotchance/orderedmap/v3"

	"dtx/css"
)

// Collection maps theme names to their converted style maps preserving
// resolution order, which is what ends up in the output document.
type Collection struct {
	om *orderedmap.OrderedMap[string, *css.StyleMap]
}

func NewCollection() *Collection {
	return &Collection{om: orderedmap.NewOrderedMap[string, *css.StyleMap]()}
}

func (c *Collection) Set(name string, styles *css.StyleMap) {
	c.om.Set(name, styles)
}

func (c *Collection) Get(name string) (*css.StyleMap, bool) {
	return c.om.Get(name)
}

func (c *Collection) Len() int {
	if c == nil || c.om == nil {
		return 0
	}
	return c.om.Len()
}

// Names returns theme names in resolution order.
func (c *Collection) Names() []string {
	names := make([]string, 0, c.Len())
	for name := range c.om.AllFromFront() {
		names = append(names, name)
	}
	return names
}

// MarshalJSON keeps themes in resolution order, standard maps would not.
func (c *Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for name, styles := range c.om.AllFromFront() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(styles)
		if err != nil {
			return nil, fmt.Errorf("unable to marshal theme %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
