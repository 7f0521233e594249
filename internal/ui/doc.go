// Package ui implements the interactive export menus.
//
// Two front ends offer the same eight choices (six projections, "Export ALL", "Exit"):
//  1. [LineMenu] : Numbered menu read one line at a time, used by default
//  2. [Model] : bubbletea list menu, used with --tui
//
// Both hand the selected projections to a [Handler] and render the returned [tasks.ExportResult].
// Invalid input is reported and the menu is shown again; only the exit choice (or end of input) ends the loop.
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern. Exports run through a command
// and report back with a message, one at a time.
package ui
