package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Specs is an ordered key/value mapping of product attributes. It is encoded
// as a JSON object whose members keep their order.
type Specs = orderedmap.OrderedMap[string, string]

// Spec is a single named attribute of a product
type Spec = orderedmap.Pair[string, string]

// NewSpecs returns Specs holding pairs in the given order
func NewSpecs(pairs ...Spec) *Specs {
	specs := orderedmap.New[string, string](len(pairs))
	for _, p := range pairs {
		specs.Set(p.Key, p.Value)
	}
	return specs
}
