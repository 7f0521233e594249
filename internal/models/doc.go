// Package models defines the playlist data fetched from the video platform.
//
// A run fetches exactly one [PlaylistInfo] and every export reads it without modifying it:
//   - [PlaylistInfo] : Playlist title plus its ordered entries
//   - [Entry] : One playlist item, an ID and a display title
//
// Entry order is significant; it defines the 1-based numbering used by the indexed exports.
package models
