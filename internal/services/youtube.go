// YouTube playlist [Fetcher] implementation
//
// Uses yt-dlp's flat extraction, which lists playlist entries without visiting each video.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/desertthunder/ytpl/internal/models"
	"github.com/desertthunder/ytpl/internal/shared"
)

const playlistURLPrefix string = "https://www.youtube.com/playlist?list="

var playlistIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{2,}$`)

// YouTubeEntry represents one item of a flat playlist extraction.
type YouTubeEntry struct {
	Type  string `json:"_type"`
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// YouTubePlaylist represents the document yt-dlp prints for a flat playlist extraction.
//
// Entries is a pointer so a missing key (not a playlist) can be told apart from an empty playlist.
type YouTubePlaylist struct {
	Type    string          `json:"_type"`
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Entries *[]YouTubeEntry `json:"entries"`
}

// YouTubeService implements the [Fetcher] interface for YouTube playlists.
type YouTubeService struct {
	extractor Extractor
}

// NewYouTubeService creates a new YouTube service instance. A nil extractor uses yt-dlp.
func NewYouTubeService(extractor Extractor) *YouTubeService {
	if extractor == nil {
		extractor = NewYTDLPExtractor(false)
	}

	return &YouTubeService{extractor: extractor}
}

// Name returns the service name.
func (y *YouTubeService) Name() string {
	return "YouTube"
}

// FetchPlaylist retrieves playlist metadata with a single flat extraction.
func (y *YouTubeService) FetchPlaylist(ctx context.Context, playlistURL string) (*models.PlaylistInfo, error) {
	target, err := NormalizePlaylistURL(playlistURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrFetch, err)
	}

	data, err := y.extractor.Extract(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrFetch, err)
	}

	info, err := ParsePlaylist(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrFetch, err)
	}

	return info, nil
}

// ParsePlaylist decodes a flat extraction document into a [models.PlaylistInfo].
//
// Entry order is preserved and entries are neither deduplicated nor validated.
func ParsePlaylist(data []byte) (*models.PlaylistInfo, error) {
	var ytp YouTubePlaylist
	if err := json.Unmarshal(data, &ytp); err != nil {
		return nil, fmt.Errorf("failed to decode playlist: %w", err)
	}

	if ytp.Entries == nil {
		if ytp.Type != "" {
			return nil, fmt.Errorf("%w: got %s", shared.ErrNotPlaylist, ytp.Type)
		}
		return nil, shared.ErrNotPlaylist
	}

	entries := make([]models.Entry, len(*ytp.Entries))
	for i, e := range *ytp.Entries {
		entries[i] = models.Entry{ID: e.ID, Title: e.Title}
	}

	return &models.PlaylistInfo{
		ID:      ytp.ID,
		Title:   ytp.Title,
		Entries: entries,
	}, nil
}

// NormalizePlaylistURL validates user input and turns a bare playlist ID into a playlist URL.
//
// Full URLs are passed through unchanged; scheme-less URLs get https.
func NormalizePlaylistURL(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: playlist URL", shared.ErrMissingArgument)
	}

	if !strings.Contains(input, "://") && strings.Contains(input, "/") {
		input = "https://" + input
	}

	if strings.Contains(input, "://") {
		u, err := url.Parse(input)
		if err != nil {
			return "", fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return "", fmt.Errorf("%w: unsupported scheme %q", shared.ErrInvalidInput, u.Scheme)
		}
		if u.Host == "" {
			return "", fmt.Errorf("%w: missing host in %q", shared.ErrInvalidInput, input)
		}
		return input, nil
	}

	if playlistIDPattern.MatchString(input) {
		return playlistURLPrefix + input, nil
	}

	return "", fmt.Errorf("%w: %q is neither a URL nor a playlist ID", shared.ErrInvalidInput, input)
}
