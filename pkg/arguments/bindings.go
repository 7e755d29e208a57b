package arguments

// Bindings maps argument names to their ordered, non-empty values
type Bindings struct {
	order  []string
	values map[string][]string
}

// NewBindings returns an empty Bindings
func NewBindings() *Bindings {
	return &Bindings{values: make(map[string][]string)}
}

// Add appends values to name, registering name on first use
func (b *Bindings) Add(name string, values ...string) {
	if _, exists := b.values[name]; !exists {
		b.order = append(b.order, name)
	}
	b.values[name] = append(b.values[name], values...)
}

// Values returns the values bound to name
func (b *Bindings) Values(name string) ([]string, bool) {
	values, ok := b.values[name]
	return values, ok
}

// Has reports whether name is bound
func (b *Bindings) Has(name string) bool {
	_, ok := b.values[name]
	return ok
}

// Names returns the bound names in first-appearance order
func (b *Bindings) Names() []string {
	return append([]string(nil), b.order...)
}

// Len returns the number of distinct names
func (b *Bindings) Len() int {
	return len(b.order)
}

// MultiValued returns the names bound to more than one value, in
// first-appearance order
func (b *Bindings) MultiValued() []string {
	var names []string
	for _, name := range b.order {
		if len(b.values[name]) > 1 {
			names = append(names, name)
		}
	}
	return names
}
