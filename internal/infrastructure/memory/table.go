package memory

import "slices"

// table colección en memoria que conserva el orden de inserción.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) clone() *table[T] {
	c := &table[T]{rows: make(map[string]T, len(t.rows)), order: slices.Clone(t.order)}
	for k, v := range t.rows {
		c.rows[k] = v
	}
	return c
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) insert(id string, v T) bool {
	if _, ok := t.rows[id]; ok {
		return false
	}
	t.rows[id] = v
	t.order = append(t.order, id)
	return true
}

func (t *table[T]) replace(id string, v T) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = v
	return true
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	t.order = slices.DeleteFunc(t.order, func(s string) bool { return s == id })
	return true
}

// filter devuelve copias de las filas que cumplen keep, en orden de inserción.
func (t *table[T]) filter(keep func(T) bool) []*T {
	out := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		v := t.rows[id]
		if keep == nil || keep(v) {
			out = append(out, &v)
		}
	}
	return out
}
