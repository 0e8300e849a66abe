package commands

import (
	"time"

	"github.com/aish1496/world-map-explorer/internal/dataset"
)

// TUIState represents the current state of the TUI.
type TUIState int

const (
	StateLoading TUIState = iota
	StateReady
	StateError
)

func (s TUIState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "Unknown"
	}
}

// ViewMode selects what the main pane shows.
type ViewMode int

const (
	ViewMap ViewMode = iota
	ViewTable
)

func (v ViewMode) String() string {
	switch v {
	case ViewMap:
		return "map"
	case ViewTable:
		return "table"
	default:
		return "Unknown"
	}
}

// datasetLoadedMsg carries the result of loading the dataset.
type datasetLoadedMsg struct {
	ds       dataset.Dataset
	err      error
	duration time.Duration
}
