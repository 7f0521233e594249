// package models defines the data model for the playlist exporter
package models

// WatchURLPrefix is joined with an [Entry] ID to build its watch URL.
const WatchURLPrefix string = "https://www.youtube.com/watch?v="

// PlaylistInfo represents a playlist as returned by a flat extraction.
//
// An empty Title means the platform did not report one.
type PlaylistInfo struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

// Entry represents a single playlist item.
type Entry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// URL returns the watch URL for the entry. The ID is used verbatim.
func (e Entry) URL() string {
	return WatchURLPrefix + e.ID
}

// Len returns the number of entries in the playlist.
func (p *PlaylistInfo) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}
