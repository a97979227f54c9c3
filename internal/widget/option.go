package widget

// Option is one selectable entry in a choice widget. Values are compared
// with ==, so highlight and checked tracking follow the value, not the
// label; labels are purely cosmetic.
type Option[V comparable] struct {
	Label string
	Value V
	Hint  string
}

// Choices builds options whose labels and values are the same string.
func Choices(labels ...string) []Option[string] {
	opts := make([]Option[string], len(labels))
	for i, l := range labels {
		opts[i] = Option[string]{Label: l, Value: l}
	}
	return opts
}

// indexOfValue returns the index of the option holding value, or -1.
func indexOfValue[V comparable](opts []Option[V], value V) int {
	for i, o := range opts {
		if o.Value == value {
			return i
		}
	}
	return -1
}
