// Package services defines the [Fetcher] interface for playlist metadata providers and implements it for YouTube.
//
// # Fetcher Interface
//
// A fetcher turns a playlist URL (or a bare playlist ID) into a [models.PlaylistInfo].
// The rest of the program only ever sees that record; how it was obtained stays here.
//
// # YouTube Implementation
//
// [YouTubeService] runs yt-dlp through go-ytdlp in flat mode: playlist membership only, no per-video
// metadata and no media download. The single JSON document yt-dlp prints is decoded into
// [models.PlaylistInfo].
//
// The yt-dlp invocation sits behind the [Extractor] interface so tests can supply canned documents.
//
// # Error Handling
//
// Every failure wraps [shared.ErrFetch]:
//   - [shared.ErrMissingArgument] : No URL given
//   - [shared.ErrInvalidInput] : URL could not be parsed
//   - [shared.ErrNotPlaylist] : yt-dlp resolved the URL to something without entries (a single video)
//
// Nothing is retried.
package services
