package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/keymap"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 0, bar.BookCount())
}

func TestNewBar_NilArgs(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
}

func TestBar_SetState(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateLoading)

	assert.Equal(t, StateLoading, bar.State())
}

func TestBar_SetMessage(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetMessage("added to shelf")

	assert.Equal(t, "added to shelf", bar.Message())
}

func TestBar_SetBookCount(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetBookCount(10)

	assert.Equal(t, 10, bar.BookCount())
}

func TestBar_View_Ready(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(80)

	view := bar.View()

	assert.Contains(t, view, "Ready")
}

func TestBar_View_Loading(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(80)
	bar.SetState(StateLoading)

	view := bar.View()

	assert.Contains(t, view, "Finding books")
}

func TestBar_View_LoadingMore(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(80)
	bar.SetState(StateLoadingMore)

	view := bar.View()

	assert.Contains(t, view, "more books")
}

func TestBar_View_Error(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(80)
	bar.SetState(StateError)
	bar.SetMessage("upstream failure")

	view := bar.View()

	assert.Contains(t, view, "Error: upstream failure")
}

func TestBar_View_Results(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetState(StateResults)
	bar.SetBookCount(10)

	view := bar.View()

	assert.Contains(t, view, "10 recommendations")
}

func TestBar_View_ResultsHints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(200)
	bar.SetState(StateResults)
	bar.SetBookCount(5)

	view := bar.View()

	// Discover keybinding hints are shown alongside results
	assert.Contains(t, view, "want to read")
	assert.Contains(t, view, "mark read")
}

func TestBar_View_ShelvesHints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(200)
	bar.SetState(StateShelves)

	view := bar.View()

	assert.Contains(t, view, "move")
	assert.Contains(t, view, "remove")
}

func TestBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetBookCount(3)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 0, bar.BookCount())
}
