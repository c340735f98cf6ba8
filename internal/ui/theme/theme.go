package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, lecture-hall tones
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#EAB308") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Partial   = lipgloss.Color("#F59E0B") // Amber Orange
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F1F5F9") // Near White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Chat roles
var (
	TutorLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	LearnerLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	NoticeText = lipgloss.NewStyle().
			Foreground(Partial).
			Italic(true)
)

// Verdict badges
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	PartialBadge = lipgloss.NewStyle().
			Foreground(Partial).
			Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Foreground(Text).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Foreground(TextDim).
		Padding(0, 2)

	StageBadge = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)
