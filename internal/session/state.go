package session

import (
	"fmt"
	"sync"
	"time"

	"tokpee/domain/chat"
	"tokpee/domain/core"
	"tokpee/domain/dataset"
	apperrors "tokpee/internal/errors"
)

// Tab is a dashboard view
type Tab string

const (
	TabDashboard  Tab = "dashboard"
	TabProducts   Tab = "products"
	TabOrders     Tab = "orders"
	TabAIResearch Tab = "ai-research"
	TabSmartStock Tab = "smart-stock"
	TabData       Tab = "data"
)

// Tabs lists every view in navigation order
var Tabs = []Tab{TabDashboard, TabProducts, TabOrders, TabAIResearch, TabSmartStock, TabData}

// ParseTab validates a tab name
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", apperrors.InvalidInput(fmt.Sprintf("unknown tab %q", s))
}

// Snapshot is a copy of the application state at one instant
type Snapshot struct {
	SessionID       core.SessionID   `json:"session_id"`
	ActiveTab       Tab              `json:"active_tab"`
	IsLoading       bool             `json:"is_loading"`
	History         []chat.Message   `json:"history"`
	Dataset         *dataset.Summary `json:"dataset,omitempty"`
	SelectedProduct core.ProductID   `json:"selected_product,omitempty"`
}

// AppState is the dashboard's single owned state object. Each field has one
// mutator; readers get copies.
type AppState struct {
	mu       sync.RWMutex
	id       core.SessionID
	tab      Tab
	loading  bool
	history  []chat.Message
	dataset  *dataset.Dataset
	selected core.ProductID
}

// NewAppState starts a session on the dashboard tab with the assistant greeting
func NewAppState() *AppState {
	return &AppState{
		id:  core.NewSessionID(),
		tab: TabDashboard,
		history: []chat.Message{{
			Role: chat.RoleAssistant,
			Text: chat.Greeting,
			At:   time.Now(),
		}},
	}
}

// SetActiveTab switches the visible view
func (s *AppState) SetActiveTab(tab Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = tab
}

// SetLoading marks whether an assistant reply is pending
func (s *AppState) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// SetHistory replaces the conversation
func (s *AppState) SetHistory(history []chat.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append([]chat.Message(nil), history...)
}

// ReplaceDataset makes ds the current dataset, discarding the previous one
func (s *AppState) ReplaceDataset(ds *dataset.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
}

// SelectProduct records the product open in the restock view
func (s *AppState) SelectProduct(id core.ProductID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
}

// History returns a copy of the conversation
func (s *AppState) History() []chat.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]chat.Message(nil), s.history...)
}

// Dataset returns the current dataset, or nil before the first upload.
// Datasets are immutable, so the pointer is shared.
func (s *AppState) Dataset() *dataset.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// SelectedProduct returns the product open in the restock view
func (s *AppState) SelectedProduct() core.ProductID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Snapshot copies the whole state
func (s *AppState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		SessionID:       s.id,
		ActiveTab:       s.tab,
		IsLoading:       s.loading,
		History:         append([]chat.Message(nil), s.history...),
		SelectedProduct: s.selected,
	}
	if s.dataset != nil {
		summary := s.dataset.Summarize()
		snap.Dataset = &summary
	}
	return snap
}
