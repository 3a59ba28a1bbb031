package binding

// Map is the ordered set of bindings of one population pass.
// Names are unique: the first field added for a name is kept and
// later fields with the same name are dropped without an error.
type Map struct {
	fields   []Field
	index    map[string]int
	shadowed []Field
}

func NewMap() *Map {
	return &Map{index: map[string]int{}}
}

// Add appends f unless its name is already bound. It reports whether f was kept.
func (m *Map) Add(f Field) bool {
	if m.index == nil {
		m.index = map[string]int{}
	}

	if _, ok := m.index[f.Name]; ok {
		m.shadowed = append(m.shadowed, f)
		return false
	}

	m.index[f.Name] = len(m.fields)
	m.fields = append(m.fields, f)
	return true
}

// Fields returns the kept fields in the order they were added.
func (m *Map) Fields() []Field {
	return append([]Field(nil), m.fields...)
}

// Names returns the bound names in the order they were added.
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		names = append(names, f.Name)
	}

	return names
}

func (m *Map) Lookup(name string) (Field, bool) {
	i, ok := m.index[name]
	if !ok {
		return Field{}, false
	}

	return m.fields[i], true
}

func (m *Map) Len() int { return len(m.fields) }

// Shadowed returns the fields dropped because their name was already bound.
// Population never touches them.
func (m *Map) Shadowed() []Field {
	return append([]Field(nil), m.shadowed...)
}
