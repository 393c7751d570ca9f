package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		Website:      "https://hawk-eyes.io",
		SupportEmail: "customer_service@hawk-eyes.io",
		NoColor:      true,
	}
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func pressKey(t *testing.T, m Model, keyType tea.KeyType) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: keyType})
	model, ok := updated.(Model)
	require.True(t, ok)
	return model
}

func TestModel_AnalyzeRendersResult(t *testing.T) {
	m := NewModel(testOptions())
	m = typeString(t, m, "d4c3b2a1e5f6789012345678901234567890abcdef1234567890abcdef123456")
	m = pressKey(t, m, tea.KeyEnter)

	view := m.View()
	assert.Contains(t, view, "Apple Push Notification Service (APNs)")
	assert.Contains(t, view, "Device Token")
	assert.Contains(t, view, "High")
}

func TestModel_AnalyzeEmptyInputShowsError(t *testing.T) {
	m := NewModel(testOptions())
	m = pressKey(t, m, tea.KeyEnter)

	assert.Contains(t, m.View(), "Error: Invalid token provided")
}

func TestModel_ClearResetsForm(t *testing.T) {
	m := NewModel(testOptions())
	m = typeString(t, m, "abc")
	m = pressKey(t, m, tea.KeyEnter)
	require.Contains(t, m.View(), "Short Token")

	m = pressKey(t, m, tea.KeyCtrlR)
	view := m.View()
	assert.NotContains(t, view, "Short Token")
	assert.Contains(t, view, "Enter a token and press enter to analyze it.")
}

func TestModel_QuitKeys(t *testing.T) {
	for _, keyType := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := NewModel(testOptions())
		_, cmd := m.Update(tea.KeyMsg{Type: keyType})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestModel_TabTogglesFocus(t *testing.T) {
	m := NewModel(testOptions())
	require.True(t, m.input.Focused())

	m = pressKey(t, m, tea.KeyTab)
	assert.False(t, m.input.Focused())

	m = pressKey(t, m, tea.KeyTab)
	assert.True(t, m.input.Focused())
}

func TestModel_ViewShowsLinks(t *testing.T) {
	m := NewModel(testOptions())
	view := m.View()

	assert.Contains(t, view, "https://hawk-eyes.io")
	assert.Contains(t, view, "customer_service@hawk-eyes.io")
}
