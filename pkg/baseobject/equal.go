package baseobject

import "reflect"

// comparison compares property values structurally.
// Pairs of Objects already being compared are assumed to be equal, which ends cycles.
type comparison struct {
	visited map[[2]*Object]struct{}
}

func (c *comparison) objects(a, b *Object) bool {
	if a == b {
		return true
	}

	if a == nil || b == nil || a.class != b.class {
		return false
	}

	pair := [2]*Object{a, b}
	if _, ok := c.visited[pair]; ok {
		return true
	}

	c.visited[pair] = struct{}{}

	return c.maps(a.GetProperties(), b.GetProperties())
}

func (c *comparison) maps(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}

	for k, va := range a {
		vb, ok := b[k]
		if !ok || !c.values(va, vb) {
			return false
		}
	}

	return true
}

func (c *comparison) values(a, b any) bool {
	switch a := a.(type) {
	case *Object:
		b, ok := b.(*Object)

		return ok && c.objects(a, b)
	case map[string]any:
		b, ok := b.(map[string]any)

		return ok && c.maps(a, b)
	case []any:
		b, ok := b.([]any)
		if !ok || len(a) != len(b) {
			return false
		}

		for i := range a {
			if !c.values(a[i], b[i]) {
				return false
			}
		}

		return true
	}

	if isFunc(a) || isFunc(b) {
		// Functions are only equal to themselves.
		return isFunc(a) && isFunc(b) && reflect.TypeOf(a) == reflect.TypeOf(b) &&
			reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}

	return reflect.DeepEqual(a, b)
}
