// package services defines interface Fetcher for retrieving playlist metadata
package services

import (
	"context"

	"github.com/desertthunder/ytpl/internal/models"
)

// Fetcher defines the interface for playlist metadata providers.
type Fetcher interface {
	// FetchPlaylist retrieves the title and ordered entries of a playlist.
	// The returned record must not be modified by callers.
	FetchPlaylist(ctx context.Context, playlistURL string) (*models.PlaylistInfo, error)

	// Name returns the name of the service (e.g., "YouTube")
	Name() string
}

// Extractor runs a flat metadata extraction and returns the raw JSON document.
type Extractor interface {
	Extract(ctx context.Context, url string) ([]byte, error)
}
