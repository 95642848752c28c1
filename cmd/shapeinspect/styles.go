package main

import "github.com/charmbracelet/lipgloss"

// ==================== colors ====================
var (
	accent    = lipgloss.Color("#AF52DE")
	highlight = lipgloss.Color("#FFCC00")
	muted     = lipgloss.Color("241")
	panelBG   = lipgloss.Color("235")
)

// previewBackdrop is composited under translucent preview pixels.
const previewBackdrop = "#1C1C1E"

// ==================== layout ====================
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	sidebarStyle = lipgloss.NewStyle().
			Width(22).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			MarginRight(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1)

	pickerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingLeft(2)

	activePickerStyle = lipgloss.NewStyle().
				Foreground(highlight).
				Bold(true).
				PaddingLeft(0)

	statusStyle = lipgloss.NewStyle().
			Foreground(muted).
			Background(panelBG).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)
)
