package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lrstanley/go-ytdlp"
)

// YTDLPExtractor implements [Extractor] with the yt-dlp binary.
type YTDLPExtractor struct {
	install bool
}

// NewYTDLPExtractor creates an extractor. When install is true a yt-dlp binary is downloaded
// on first use if none can be found.
func NewYTDLPExtractor(install bool) *YTDLPExtractor {
	return &YTDLPExtractor{install: install}
}

// Extract runs yt-dlp in flat, quiet mode and returns the single JSON document it prints.
func (x *YTDLPExtractor) Extract(ctx context.Context, url string) ([]byte, error) {
	if x.install {
		if _, err := ytdlp.Install(ctx, nil); err != nil {
			return nil, fmt.Errorf("failed to install yt-dlp: %w", err)
		}
	}

	dl := ytdlp.New().
		FlatPlaylist().   // Playlist membership only
		DumpSingleJSON(). // One JSON document for the whole playlist
		SkipDownload().
		Quiet().
		NoWarnings()

	result, err := dl.Run(ctx, url)
	if err != nil {
		if result != nil && strings.TrimSpace(result.Stderr) != "" {
			return nil, fmt.Errorf("yt-dlp failed: %w: %s", err, strings.TrimSpace(result.Stderr))
		}
		return nil, fmt.Errorf("yt-dlp failed: %w", err)
	}

	return []byte(result.Stdout), nil
}
