package view

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/fjod/mycogrow/storefront-service/internal/risk"
)

type Tab string

const (
	TabOverview  Tab = "overview"
	TabHow       Tab = "how"
	TabImpact    Tab = "impact"
	TabSimulator Tab = "simulator"
	TabShop      Tab = "shop"
)

// DefaultMetalLevel is where the simulator slider starts.
const DefaultMetalLevel = 60

var Tabs = []Tab{TabOverview, TabHow, TabImpact, TabSimulator, TabShop}

var ErrUnknownTab = errors.New("unknown tab")

// Snapshot is the page state read by the presentation layer.
type Snapshot struct {
	ActiveTab  Tab  `json:"active_tab"`
	ShowTeam   bool `json:"show_team"`
	ShowCart   bool `json:"show_cart"`
	MetalLevel int  `json:"metal_level"`
}

// State owns the page navigation and modal flags for one session.
type State struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewState() *State {
	return &State{snap: Snapshot{ActiveTab: TabOverview, MetalLevel: DefaultMetalLevel}}
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *State) SetTab(t Tab) error {
	if !slices.Contains(Tabs, t) {
		return fmt.Errorf("%w: %q", ErrUnknownTab, t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ActiveTab = t
	return nil
}

// SetMetalLevel stores the simulator input clamped to the slider range and
// returns the stored value.
func (s *State) SetMetalLevel(level int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.MetalLevel = risk.Clamp(level)
	return s.snap.MetalLevel
}

func (s *State) OpenTeam() { s.setTeam(true) }
func (s *State) CloseTeam() { s.setTeam(false) }
func (s *State) OpenCart() { s.setCart(true) }
func (s *State) CloseCart() { s.setCart(false) }

func (s *State) setTeam(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ShowTeam = v
}

func (s *State) setCart(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ShowCart = v
}
