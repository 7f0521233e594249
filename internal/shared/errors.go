package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Fetch errors
	ErrFetch       = fmt.Errorf("failed to fetch playlist")
	ErrNotPlaylist = fmt.Errorf("not a playlist")

	// Export errors
	ErrWrite             = fmt.Errorf("failed to write export")
	ErrUnknownProjection = fmt.Errorf("unknown projection")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrInvalidChoice   = fmt.Errorf("invalid choice")
	ErrMissingArgument = fmt.Errorf("missing required argument")
)
