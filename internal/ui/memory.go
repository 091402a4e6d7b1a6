package ui

import "sync"

// Memory is an in-memory Surface. It backs tests and serves as the state
// model for the terminal front-end.
type Memory struct {
	mu         sync.RWMutex
	texts      map[string]string
	panels     map[string]bool
	inputs     map[string]string
	navTargets []string
	activeNav  string
	login      bool
}

// NewMemory builds a surface whose navigation bar declares the given targets.
func NewMemory(navTargets []string) *Memory {
	return &Memory{
		texts:      make(map[string]string),
		panels:     make(map[string]bool),
		inputs:     make(map[string]string),
		navTargets: append([]string(nil), navTargets...),
	}
}

func (m *Memory) SetText(region, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts[region] = text
}

func (m *Memory) Text(region string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.texts[region]
}

func (m *Memory) SetPanelHidden(panel string, hidden bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panels[panel] = hidden
}

func (m *Memory) PanelHidden(panel string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	hidden, ok := m.panels[panel]
	if !ok {
		return true
	}
	return hidden
}

func (m *Memory) SetActiveNav(target string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeNav = ""
	for _, declared := range m.navTargets {
		if declared == target {
			m.activeNav = target
			return
		}
	}
}

func (m *Memory) ActiveNav() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeNav
}

func (m *Memory) SetLoginVisible(visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.login = visible
}

func (m *Memory) LoginVisible() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.login
}

func (m *Memory) SetInput(field, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs[field] = value
}

func (m *Memory) Input(field string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inputs[field]
}
