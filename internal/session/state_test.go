package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokpee/domain/chat"
	"tokpee/domain/dataset"
	apperrors "tokpee/internal/errors"
)

func TestNewAppState(t *testing.T) {
	s := NewAppState()
	snap := s.Snapshot()

	assert.NotEmpty(t, snap.SessionID.String())
	assert.Equal(t, TabDashboard, snap.ActiveTab)
	assert.False(t, snap.IsLoading)
	require.Len(t, snap.History, 1)
	assert.Equal(t, chat.RoleAssistant, snap.History[0].Role)
	assert.Equal(t, chat.Greeting, snap.History[0].Text)
	assert.Nil(t, snap.Dataset)
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs {
		got, err := ParseTab(string(tab))
		require.NoError(t, err)
		assert.Equal(t, tab, got)
	}

	_, err := ParseTab("settings")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.GetCode(err))
}

func TestMutatorsTouchOneField(t *testing.T) {
	s := NewAppState()
	before := s.Snapshot()

	s.SetActiveTab(TabSmartStock)
	s.SetLoading(true)
	s.SelectProduct("3")

	after := s.Snapshot()
	assert.Equal(t, TabSmartStock, after.ActiveTab)
	assert.True(t, after.IsLoading)
	assert.Equal(t, "3", after.SelectedProduct.String())
	assert.Equal(t, before.History, after.History)
	assert.Equal(t, before.SessionID, after.SessionID)
}

func TestReplaceDataset(t *testing.T) {
	s := NewAppState()
	first := &dataset.Dataset{Name: "a.csv", Columns: []string{"x"}, Rows: []dataset.Row{{"x": dataset.Number(1)}}}
	second := &dataset.Dataset{Name: "b.json", Columns: []string{"y"}, Rows: []dataset.Row{{"y": dataset.Text("k")}, {}}}

	s.ReplaceDataset(first)
	s.ReplaceDataset(second)

	assert.Same(t, second, s.Dataset())
	snap := s.Snapshot()
	require.NotNil(t, snap.Dataset)
	assert.Equal(t, "b.json", snap.Dataset.Name)
	assert.Equal(t, 2, snap.Dataset.RowCount)
	assert.Equal(t, []string{"y"}, snap.Dataset.Columns)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewAppState()
	snap := s.Snapshot()
	snap.History[0].Text = "changed"

	assert.Equal(t, chat.Greeting, s.History()[0].Text)

	history := s.History()
	history = append(history, chat.Message{Role: chat.RoleUser, Text: "hi"})
	s.SetHistory(history)
	history[1].Text = "mutated"

	assert.Equal(t, "hi", s.History()[1].Text)
}

func TestConcurrentAccess(t *testing.T) {
	s := NewAppState()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.SetLoading(i%2 == 0)
			s.SetActiveTab(Tabs[i%len(Tabs)])
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
}
