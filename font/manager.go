package font

import (
	"fmt"

	"github.com/coreui-go/gui"
)

// Manager implements gui.FontProvider over a set of BakedFonts produced by
// one or more Atlas bakes, playing the role the application-supplied font
// manager plays in §6's external interface contract ("host owns font
// loading; the library only consumes the baked result").
type Manager struct {
	fonts  map[string]*BakedFont
	active string
}

// NewManager creates an empty font manager.
func NewManager() *Manager {
	return &Manager{fonts: make(map[string]*BakedFont)}
}

// Register adds a baked font under name, making it selectable via
// SetActiveFont. The first registered font becomes active automatically.
func (m *Manager) Register(name string, f *BakedFont) {
	m.fonts[name] = f
	if m.active == "" {
		m.active = name
	}
}

// ActiveFont implements gui.FontProvider.
func (m *Manager) ActiveFont() gui.Font {
	if f, ok := m.fonts[m.active]; ok {
		return f
	}
	return nil
}

// SetActiveFont implements gui.FontProvider.
func (m *Manager) SetActiveFont(name string) error {
	if _, ok := m.fonts[name]; !ok {
		return fmt.Errorf("font: %q is not registered", name)
	}
	m.active = name
	return nil
}

// Font returns the named baked font directly, for callers that want a
// specific font rather than the active one (e.g. a monospace fallback for
// number inputs).
func (m *Manager) Font(name string) *BakedFont {
	return m.fonts[name]
}
