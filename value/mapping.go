package value

// Mapping is an ordered string-keyed collection of values. Keys are unique;
// setting an existing key replaces its value in place, keeping the original
// position.
type Mapping struct {
	keys    []string
	entries map[string]Value
}

func NewMapping() *Mapping {
	return &Mapping{entries: make(map[string]Value)}
}

// Pairs builds a Mapping from alternating key, value arguments.
// It panics on an odd argument count or a non-string key.
func Pairs(kv ...any) *Mapping {
	if len(kv)%2 != 0 {
		panic("value: Pairs requires an even number of arguments")
	}

	m := NewMapping()
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic("value: Pairs keys must be strings")
		}

		v, err := FromGo(kv[i+1])
		if err != nil {
			panic(err)
		}
		m.Set(k, v)
	}

	return m
}

func (m *Mapping) Set(key string, v Value) {
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

func (m *Mapping) Get(key string) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *Mapping) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

func (m *Mapping) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}
