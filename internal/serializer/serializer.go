// Package serializer turns entity graphs into ordered, JSON-ready trees.
//
// Relationships between entities are bidirectional, so a naive walk never
// ends. Each model declares exclusion rules naming the edges that must not
// be followed when serialization reaches it; the rules of every model on the
// path are combined with the rules handed down by its parent.
package serializer

import (
	"errors"
	"fmt"
	"reflect"

	"gamereviews/backend/internal/apperror"
)

// MaxDepth bounds entity nesting. Well-formed rule sets stop far earlier; the
// limit turns a missing rule into an error instead of a stack overflow.
const MaxDepth = 32

// ErrMaxDepth is returned when nesting exceeds MaxDepth.
var ErrMaxDepth = errors.New("serializer: maximum nesting depth exceeded")

// Model is implemented by every serializable entity.
type Model interface {
	// ModelName is used in error messages.
	ModelName() string
	// Fields lists columns and relationships in declaration order.
	Fields() []Field
	// SerializeRules are applied whenever this model is serialized,
	// at the top level or nested.
	SerializeRules() []string
}

// Field is a single named value of a model. Value is a scalar, a Model for a
// to-one relationship, or a []Model for a to-many relationship.
type Field struct {
	Name  string
	Value any
	// Derived fields are computed views. They are only emitted when a rule
	// asks for them.
	Derived bool
}

// Serialize converts m into a Dict. Extra rules are applied on top of the
// model's own rules. A nil model is reported as apperror.ErrNotFound.
func Serialize(m Model, rules ...string) (*Dict, error) {
	return serializeModel(m, rules, 0)
}

// SerializeAll serializes every element of ms with the same rules. The result
// is never nil, so an empty input encodes as [].
func SerializeAll[T Model](ms []T, rules ...string) ([]*Dict, error) {
	out := make([]*Dict, 0, len(ms))
	for _, m := range ms {
		d, err := Serialize(m, rules...)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func serializeModel(m Model, inherited []string, depth int) (*Dict, error) {
	if isNil(m) {
		return nil, fmt.Errorf("serialize: %w", apperror.ErrNotFound)
	}
	if depth >= MaxDepth {
		return nil, fmt.Errorf("%w (at %s)", ErrMaxDepth, m.ModelName())
	}

	own := m.SerializeRules()
	rules := make([]string, 0, len(inherited)+len(own)+len(DefaultRules))
	rules = append(rules, inherited...)
	rules = append(rules, own...)
	rules = append(rules, DefaultRules...)
	rs := compile(rules)

	out := NewDict()
	for _, f := range m.Fields() {
		if !rs.admits(f) {
			continue
		}
		v, err := serializeValue(f.Value, rs.nested[f.Name], depth+1)
		if err != nil {
			return nil, err
		}
		out.Set(f.Name, v)
	}
	return out, nil
}

func serializeValue(v any, rules []string, depth int) (any, error) {
	switch val := v.(type) {
	case Model:
		// an unset to-one relationship encodes as null
		if isNil(val) {
			return nil, nil
		}
		return serializeModel(val, rules, depth)
	case []Model:
		items := make([]any, 0, len(val))
		for _, item := range val {
			if isNil(item) {
				continue
			}
			d, err := serializeModel(item, rules, depth)
			if err != nil {
				return nil, err
			}
			items = append(items, d)
		}
		return items, nil
	default:
		return v, nil
	}
}

func isNil(m Model) bool {
	if m == nil {
		return true
	}
	rv := reflect.ValueOf(m)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
