// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the cadence CLI.
package ux

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Cadence color palette
var (
	// Brand palette
	ColorIndigo      = lipgloss.Color("#6C5CE7") // Primary brand color
	ColorIndigoLight = lipgloss.Color("#A29BFE") // Highlights, active elements
	ColorGold        = lipgloss.Color("#FDCB6E") // Streaks, bonuses

	// Health palette. These track the web client so terminal and browser
	// render a habit's condition identically.
	ColorHealthy      = lipgloss.Color("#52C41A") // Green - completion rate >= 90%
	ColorFair         = lipgloss.Color("#FAAD14") // Amber - completion rate >= 60%
	ColorUnhealthy    = lipgloss.Color("#F5222D") // Red - completion rate below 60%
	ColorInsufficient = lipgloss.Color("#BFBFBF") // Grey - not enough samples

	// Semantic colors
	ColorSuccess = lipgloss.Color("#52C41A")
	ColorWarning = lipgloss.Color("#FAAD14")
	ColorError   = lipgloss.Color("#F5222D")
	ColorMuted   = lipgloss.Color("#8C8C8C")
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	// Text styles
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style
	Streak    lipgloss.Style

	// Box styles
	Box        lipgloss.Style
	WarningBox lipgloss.Style

	// Health status styles
	Healthy      lipgloss.Style
	Fair         lipgloss.Style
	Unhealthy    lipgloss.Style
	Insufficient lipgloss.Style

	// Completion indicators
	StatusDone    lipgloss.Style
	StatusPending lipgloss.Style
}{
	// Text styles
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorIndigo),
	Subtitle:  lipgloss.NewStyle().Foreground(ColorIndigoLight),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorMuted),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorIndigoLight).Bold(true),
	Streak:    lipgloss.NewStyle().Foreground(ColorGold).Bold(true),

	// Box styles
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorIndigo).
		Padding(0, 1),
	WarningBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWarning).
		Padding(0, 1),

	// Health status styles
	Healthy:      lipgloss.NewStyle().Foreground(ColorHealthy),
	Fair:         lipgloss.NewStyle().Foreground(ColorFair),
	Unhealthy:    lipgloss.NewStyle().Foreground(ColorUnhealthy),
	Insufficient: lipgloss.NewStyle().Foreground(ColorInsufficient),

	// Completion indicators
	StatusDone:    lipgloss.NewStyle().SetString("✓").Foreground(ColorSuccess),
	StatusPending: lipgloss.NewStyle().SetString("○").Foreground(ColorMuted),
}

// Icon provides themed status icons
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconPending Icon = "○"
	IconArrow   Icon = "→"
	IconBullet  Icon = "•"
	IconStreak  Icon = "🔥"
	IconTrophy  Icon = "🏆"
)

// Render returns the icon with appropriate styling
func (i Icon) Render() string {
	switch i {
	case IconSuccess:
		return Styles.Success.Render(string(i))
	case IconWarning:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	case IconPending:
		return Styles.Muted.Render(string(i))
	case IconStreak:
		return Styles.Streak.Render(string(i))
	default:
		return string(i)
	}
}

// HealthStyle returns the style for a health status label. Unknown labels
// render muted.
func HealthStyle(status string) lipgloss.Style {
	switch status {
	case "healthy":
		return Styles.Healthy
	case "fair":
		return Styles.Fair
	case "unhealthy":
		return Styles.Unhealthy
	case "insufficient_data":
		return Styles.Insufficient
	default:
		return Styles.Muted
	}
}

// Print helpers that respect personality level

// Title prints a styled title
func Title(text string) {
	if GetPersonality().Level == PersonalityMachine {
		return
	}
	fmt.Println(Styles.Title.Render(text))
}

// Success prints a success message with checkmark
func Success(text string) {
	p := GetPersonality()
	switch p.Level {
	case PersonalityMachine:
		fmt.Fprintf(os.Stdout, "OK: %s\n", text)
	case PersonalityMinimal:
		fmt.Printf("%s %s\n", IconSuccess.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconSuccess.Render(), Styles.Success.Render(text))
	}
}

// Warning prints a warning message
func Warning(text string) {
	p := GetPersonality()
	switch p.Level {
	case PersonalityMachine:
		fmt.Fprintf(os.Stderr, "WARN: %s\n", text)
	case PersonalityMinimal:
		fmt.Printf("%s %s\n", IconWarning.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconWarning.Render(), Styles.Warning.Render(text))
	}
}

// Error prints an error message
func Error(text string) {
	p := GetPersonality()
	switch p.Level {
	case PersonalityMachine:
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", text)
	case PersonalityMinimal:
		fmt.Printf("%s %s\n", IconError.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconError.Render(), Styles.Error.Render(text))
	}
}

// Info prints an informational message
func Info(text string) {
	p := GetPersonality()
	switch p.Level {
	case PersonalityMachine:
		fmt.Println(text)
	default:
		fmt.Printf("%s %s\n", Styles.Muted.Render("│"), text)
	}
}

// Muted prints muted/secondary text
func Muted(text string) {
	if GetPersonality().Level == PersonalityMachine {
		return
	}
	fmt.Println(Styles.Muted.Render(text))
}

// Box prints text in a rounded box
func Box(title, content string) {
	if GetPersonality().Level == PersonalityMachine {
		fmt.Printf("%s: %s\n", title, content)
		return
	}
	boxStyle := Styles.Box.Width(60)
	titleLine := Styles.Title.Render(title)
	fmt.Println(boxStyle.Render(titleLine + "\n" + content))
}

// Streak formats a streak count with its flame marker.
func Streak(days int) string {
	if GetPersonality().Level == PersonalityMachine {
		return fmt.Sprintf("streak=%d", days)
	}
	if days <= 0 {
		return Styles.Muted.Render("no streak")
	}
	return fmt.Sprintf("%s %s", IconStreak.Render(), Styles.Streak.Render(fmt.Sprintf("%d day streak", days)))
}

// Summary prints a completion summary line
func Summary(completed, pending, total int) {
	p := GetPersonality()
	switch p.Level {
	case PersonalityMachine:
		fmt.Printf("SUMMARY: completed=%d pending=%d total=%d\n", completed, pending, total)
	default:
		fmt.Printf("\n%s %s  %s %s  %s %s\n",
			Styles.Success.Render(fmt.Sprintf("%d", completed)), Styles.Muted.Render("completed"),
			Styles.Warning.Render(fmt.Sprintf("%d", pending)), Styles.Muted.Render("pending"),
			Styles.Bold.Render(fmt.Sprintf("%d", total)), Styles.Muted.Render("total"),
		)
	}
}

// ProgressBar renders a simple progress bar
func ProgressBar(current, total int, width int) string {
	if GetPersonality().Level == PersonalityMachine {
		return fmt.Sprintf("%d/%d", current, total)
	}
	if total <= 0 {
		total = 1
	}
	pct := float64(current) / float64(total)
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := Styles.Success.Render(repeatChar('█', filled)) +
		Styles.Muted.Render(repeatChar('░', empty))

	return fmt.Sprintf("%s %3.0f%%", bar, pct*100)
}

func repeatChar(c rune, n int) string {
	if n <= 0 {
		return ""
	}
	result := make([]rune, n)
	for i := range result {
		result[i] = c
	}
	return string(result)
}
