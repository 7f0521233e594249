// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/desertthunder/ytpl/internal/models"
)

// MockExtractor is a test double for [services.Extractor]
type MockExtractor struct {
	Data  []byte
	Err   error
	Calls []string
}

func (m *MockExtractor) Extract(ctx context.Context, url string) ([]byte, error) {
	m.Calls = append(m.Calls, url)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Data, nil
}

// MockFetcher is a test double for [services.Fetcher]
type MockFetcher struct {
	Info  *models.PlaylistInfo
	Err   error
	Calls []string
}

func (m *MockFetcher) FetchPlaylist(ctx context.Context, playlistURL string) (*models.PlaylistInfo, error) {
	m.Calls = append(m.Calls, playlistURL)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Info, nil
}

func (m *MockFetcher) Name() string { return "mock" }

// SamplePlaylist returns the two-entry playlist used throughout the tests.
func SamplePlaylist() *models.PlaylistInfo {
	return &models.PlaylistInfo{
		ID:    "PLsample",
		Title: "My List: Vol/1",
		Entries: []models.Entry{
			{ID: "abc", Title: "One"},
			{ID: "xyz", Title: "Two"},
		},
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File should not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// MustReadLines reads a file and splits it on newlines, dropping the empty string after a trailing newline.
func MustReadLines(t *testing.T, path string) []string {
	t.Helper()
	content := MustReadFile(t, path)
	if content == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
