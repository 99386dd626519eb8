package config

import (
	"bytes"
	"encoding/json"
)

// Workloads is a name-keyed set of workloads that remembers insertion order.
// It encodes as a JSON object with keys in that order.
type Workloads[T any] struct {
	names []string
	items map[string]T
}

// Set adds or replaces the workload with the given name. Replacing keeps the
// original position.
func (w *Workloads[T]) Set(name string, v T) {
	if w.items == nil {
		w.items = make(map[string]T)
	}
	if _, ok := w.items[name]; !ok {
		w.names = append(w.names, name)
	}
	w.items[name] = v
}

// Get returns the workload with the given name.
func (w *Workloads[T]) Get(name string) (T, bool) {
	v, ok := w.items[name]
	return v, ok
}

// Has reports whether a workload with the given name exists.
func (w *Workloads[T]) Has(name string) bool {
	_, ok := w.items[name]
	return ok
}

// Len returns the number of workloads.
func (w *Workloads[T]) Len() int { return len(w.names) }

// Names returns workload names in insertion order.
func (w *Workloads[T]) Names() []string {
	out := make([]string, len(w.names))
	copy(out, w.names)
	return out
}

// Each calls fn for every workload in insertion order.
func (w *Workloads[T]) Each(fn func(name string, v T)) {
	for _, name := range w.names {
		fn(name, w.items[name])
	}
}

func (w Workloads[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range w.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encode(&buf, name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encode(&buf, w.items[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encode(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // trailing newline
	return nil
}
