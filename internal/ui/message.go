package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/ytpl/internal/tasks"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgExportComplete MsgKind = iota
)

type exportComplete struct {
	item   MenuItem
	result *tasks.ExportResult
}

// exportCompleteMsg is the constructor for [MsgExportComplete]
func exportCompleteMsg(item MenuItem, result *tasks.ExportResult) Msg {
	return Msg{kind: MsgExportComplete, data: exportComplete{item, result}}
}
