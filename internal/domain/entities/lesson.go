package entities

// Example is a single Russian/English sentence pair inside a concept group.
type Example struct {
	Russian string `json:"russian"`
	English string `json:"english"`
	Source  string `json:"source"`
	Note    string `json:"note,omitempty"`
}

// ConceptGroup is a named block of examples illustrating one construction.
type ConceptGroup struct {
	Name     string    `json:"name"`
	Examples []Example `json:"examples"`
}

// Lesson is a content unit: nested concept groups, each with example
// sentence pairs.
type Lesson struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Level  string         `json:"level,omitempty"`
	Groups []ConceptGroup `json:"groups"`
}

// Examples flattens all concept groups in authored order.
func (l *Lesson) Examples() []Example {
	var out []Example
	for _, g := range l.Groups {
		out = append(out, g.Examples...)
	}
	return out
}
