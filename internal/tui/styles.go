package tui

import "github.com/rgehrsitz/fincalc/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	TitleStyle          = tuistyles.TitleStyle
	SubtitleStyle       = tuistyles.SubtitleStyle
	BorderStyle         = tuistyles.BorderStyle
	SelectedItemStyle   = tuistyles.SelectedItemStyle
	UnselectedItemStyle = tuistyles.UnselectedItemStyle
	ParameterLabelStyle = tuistyles.ParameterLabelStyle
	ErrorStyle          = tuistyles.ErrorStyle
)
