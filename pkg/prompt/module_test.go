package prompt

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestModule_StringAndRender(t *testing.T) {
	m := NewModule("test", lipgloss.NewStyle().Bold(true))
	m.Prefix = "on "
	m.AddSegment("symbol", "☿ ")
	m.AddSegment("name", "default")

	if got := m.String(); got != "on ☿ default" {
		t.Fatalf("String() = %q", got)
	}
	if got := ansi.Strip(m.Render()); got != "on ☿ default" {
		t.Fatalf("Render() stripped = %q", got)
	}
}

func TestModule_EmptySegmentsSkippedInRender(t *testing.T) {
	m := NewModule("test", lipgloss.NewStyle())
	m.AddSegment("symbol", "")
	m.AddSegment("name", "tip")

	if got := ansi.Strip(m.Render()); got != "tip" {
		t.Fatalf("Render() stripped = %q, want tip", got)
	}
	if _, ok := m.Segment("missing"); ok {
		t.Fatal("Segment() found a missing segment")
	}
}
