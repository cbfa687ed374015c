package benchkit

import "strings"

// BenchmarkID identifies one measured unit. Group is mandatory; Function
// and Value further qualify benchmarks that share a group, e.g. one entry
// per input size. The string form serves as the key under which baseline
// samples are persisted.
type BenchmarkID struct {
	Group    string
	Function string
	Value    string
}

// String renders the identity as a slash-joined path. An empty Function is
// kept as an empty segment when a Value follows it, so a value-only ID and
// a function-only ID never collide on the same baseline key.
func (id BenchmarkID) String() string {
	parts := make([]string, 0, 3)
	parts = append(parts, id.Group)
	switch {
	case id.Value != "":
		parts = append(parts, id.Function, id.Value)
	case id.Function != "":
		parts = append(parts, id.Function)
	}
	return strings.Join(parts, "/")
}
