package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the dashboard UI. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
//
// Two palettes exist, one per value of the store's dark-mode flag. The
// active palette is re-read from the store on every render, so toggling
// the theme restyles the whole UI on the next frame.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Completed tasks.
	CompletedText lipgloss.Color

	// Form feedback.
	ErrorText   lipgloss.Color
	SuccessText lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	Accent           lipgloss.Color
}

// DarkTheme is the palette for dark terminals (dark mode on).
var DarkTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	CompletedText: lipgloss.Color("240"),

	ErrorText:   lipgloss.Color("196"),
	SuccessText: lipgloss.Color("114"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	Accent:           lipgloss.Color("75"),
}

// LightTheme is the palette for light terminals (dark mode off, the
// default).
var LightTheme = Theme{
	NormalText: lipgloss.Color("235"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("254"),
	SelectedForeground: lipgloss.Color("232"),

	CompletedText: lipgloss.Color("248"),

	ErrorText:   lipgloss.Color("160"),
	SuccessText: lipgloss.Color("28"),

	HeaderForeground: lipgloss.Color("232"),
	BorderColor:      lipgloss.Color("250"),
	HelpText:         lipgloss.Color("246"),
	Accent:           lipgloss.Color("26"),
}

// ForMode returns the palette for the given dark-mode flag.
func ForMode(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}

// Styles derived from a palette. Built per render; lipgloss styles are
// cheap value types.
func (t Theme) header() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.HeaderForeground).Bold(true)
}

func (t Theme) normal() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.NormalText)
}

func (t Theme) faint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FaintText)
}

func (t Theme) completed() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.CompletedText).Strikethrough(true)
}

func (t Theme) selected() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.SelectedBackground).Foreground(t.SelectedForeground)
}

func (t Theme) fieldError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.ErrorText)
}

func (t Theme) success() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.SuccessText)
}

func (t Theme) help() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.HelpText)
}

func (t Theme) accent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

func (t Theme) box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderColor).
		Padding(1, 2)
}
