package ui

import "vtp/internal/domain"

// Viewer displays a stored parameter set in an interactive TUI
type Viewer interface {
	View(snapshot *domain.Snapshot) error
}
