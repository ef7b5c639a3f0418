// Package prompt builds prompt modules: a prefix followed by named, styled
// segments.
package prompt

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Segment is one styled piece of a module.
type Segment struct {
	Name  string
	Value string
	Style lipgloss.Style
}

// Module is the unit handed to the display layer.
type Module struct {
	Name     string
	Prefix   string
	Style    lipgloss.Style
	Segments []Segment
}

// NewModule creates an empty module with the given name and style.
func NewModule(name string, style lipgloss.Style) *Module {
	return &Module{Name: name, Style: style}
}

// AddSegment appends a segment styled with the module style.
func (m *Module) AddSegment(name, value string) {
	m.Segments = append(m.Segments, Segment{Name: name, Value: value, Style: m.Style})
}

// Segment returns the value of the named segment.
func (m *Module) Segment(name string) (string, bool) {
	for _, s := range m.Segments {
		if s.Name == name {
			return s.Value, true
		}
	}
	return "", false
}

// String returns the module as plain text.
func (m *Module) String() string {
	var b strings.Builder
	b.WriteString(m.Prefix)
	for _, s := range m.Segments {
		b.WriteString(s.Value)
	}
	return b.String()
}

// Render returns the module with segment styles applied. The prefix is
// left unstyled.
func (m *Module) Render() string {
	var b strings.Builder
	b.WriteString(m.Prefix)
	for _, s := range m.Segments {
		if s.Value == "" {
			continue
		}
		b.WriteString(s.Style.Render(s.Value))
	}
	return b.String()
}
