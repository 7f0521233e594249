// package formatter provides functions to export playlist data to CSV and Markdown
package formatter

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/desertthunder/ytpl/internal/models"
	"github.com/desertthunder/ytpl/internal/shared"
)

// DefaultHeading is the Markdown heading used when the playlist has no title.
const DefaultHeading string = "YouTube Playlist"

// Format is the on-disk layout of an export file.
type Format int

const (
	FormatCSV Format = iota
	FormatMarkdown
)

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	switch f {
	case FormatMarkdown:
		return "md"
	default:
		return "csv"
	}
}

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	default:
		return "csv"
	}
}

// Projection selects one of the fixed export layouts.
type Projection int

const (
	URLs Projection = iota
	IndexedURLs
	Titles
	IndexedTitles
	IndexedTitlesURLs
	Markdown
)

type projectionSpec struct {
	name   string
	label  string
	menu   string
	format Format
}

var projectionSpecs = map[Projection]projectionSpec{
	URLs:              {"urls", "URLs", "Export URLs only (bare URLs for download manager)", FormatCSV},
	IndexedURLs:       {"indexed_urls", "Indexed URLs", "Export indexed URLs", FormatCSV},
	Titles:            {"titles", "Titles", "Export titles only (bare titles for books)", FormatCSV},
	IndexedTitles:     {"indexed_titles", "Indexed titles", "Export indexed titles", FormatCSV},
	IndexedTitlesURLs: {"indexed_titles_urls", "Indexed titles + URLs", "Export indexed titles + URLs", FormatCSV},
	Markdown:          {"markdown", "Markdown", "Export Markdown with playlist header", FormatMarkdown},
}

// All returns every projection in export order.
func All() []Projection {
	return []Projection{URLs, IndexedURLs, Titles, IndexedTitles, IndexedTitlesURLs, Markdown}
}

func (p Projection) spec() projectionSpec {
	if s, ok := projectionSpecs[p]; ok {
		return s
	}
	return projectionSpec{name: fmt.Sprintf("projection(%d)", int(p)), label: "Unknown", format: FormatCSV}
}

// String returns the projection name, which is also its flag name.
func (p Projection) String() string { return p.spec().name }

// Label returns the human readable name used in status messages.
func (p Projection) Label() string { return p.spec().label }

// Description returns the menu text for the projection.
func (p Projection) Description() string { return p.spec().menu }

// Format returns the file format the projection is written in.
func (p Projection) Format() Format { return p.spec().format }

// Filename returns the export file name for the playlist, without a directory.
func (p Projection) Filename(info *models.PlaylistInfo) string {
	stem := shared.SanitizeFilename(info.Title)
	if p == Markdown {
		return stem + "." + p.Format().Ext()
	}
	return stem + "_" + p.String() + "." + p.Format().Ext()
}

// Rows projects the playlist entries into the rows of the export file.
//
// For [Markdown] each row holds a single line: the heading, a blank line, then one numbered link per entry.
func (p Projection) Rows(info *models.PlaylistInfo) [][]string {
	return p.rows(info, DefaultHeading)
}

func (p Projection) rows(info *models.PlaylistInfo, heading string) [][]string {
	if p == Markdown {
		return markdownRows(info, heading)
	}

	rows := make([][]string, 0, info.Len())
	for i, entry := range info.Entries {
		index := strconv.Itoa(i + 1)
		switch p {
		case URLs:
			rows = append(rows, []string{entry.URL()})
		case IndexedURLs:
			rows = append(rows, []string{index, entry.URL()})
		case Titles:
			rows = append(rows, []string{entry.Title})
		case IndexedTitles:
			rows = append(rows, []string{index, entry.Title})
		case IndexedTitlesURLs:
			rows = append(rows, []string{index, entry.Title, entry.URL()})
		}
	}
	return rows
}

func markdownRows(info *models.PlaylistInfo, heading string) [][]string {
	title := info.Title
	if title == "" {
		title = heading
	}

	rows := make([][]string, 0, info.Len()+2)
	rows = append(rows, []string{"## " + title}, []string{""})
	for i, entry := range info.Entries {
		rows = append(rows, []string{fmt.Sprintf("%d. [%s](%s)", i+1, entry.Title, entry.URL())})
	}
	return rows
}

// WriteRows creates (or truncates) the file at path and writes rows to it in the given format.
//
// A failed write leaves the partially written file in place. Errors wrap [shared.ErrWrite].
func WriteRows(path string, format Format, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrWrite, err)
	}

	if err := WriteRowsTo(f, format, rows); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrWrite, err)
	}
	return nil
}

// WriteRowsTo encodes rows to w. CSV rows use standard quoting; Markdown rows are written one line each.
func WriteRowsTo(w io.Writer, format Format, rows [][]string) error {
	switch format {
	case FormatMarkdown:
		bw := bufio.NewWriter(w)
		for _, row := range rows {
			if _, err := bw.WriteString(strings.Join(row, "") + "\n"); err != nil {
				return fmt.Errorf("%w: %w", shared.ErrWrite, err)
			}
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("%w: %w", shared.ErrWrite, err)
		}
	default:
		writer := csv.NewWriter(w)
		for _, row := range rows {
			if len(row) == 1 && row[0] == "" {
				// encoding/csv writes a lone empty field as a blank line, which readers skip
				writer.Flush()
				if err := writer.Error(); err != nil {
					return fmt.Errorf("%w: CSV writer error: %w", shared.ErrWrite, err)
				}
				if _, err := io.WriteString(w, "\"\"\n"); err != nil {
					return fmt.Errorf("%w: failed to write CSV record: %w", shared.ErrWrite, err)
				}
				continue
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("%w: failed to write CSV record: %w", shared.ErrWrite, err)
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return fmt.Errorf("%w: CSV writer error: %w", shared.ErrWrite, err)
		}
	}
	return nil
}

// Exporter writes projections of a playlist into a directory.
type Exporter struct {
	Dir     string // Output directory; empty means the working directory
	Heading string // Markdown heading for untitled playlists; empty means [DefaultHeading]
}

// Export writes one projection of info and returns the path of the written file.
func (e Exporter) Export(p Projection, info *models.PlaylistInfo) (string, error) {
	if _, ok := projectionSpecs[p]; !ok {
		return "", fmt.Errorf("%w: %d", shared.ErrUnknownProjection, int(p))
	}

	heading := e.Heading
	if heading == "" {
		heading = DefaultHeading
	}

	path := p.Filename(info)
	if e.Dir != "" {
		path = filepath.Join(e.Dir, path)
	}

	if err := WriteRows(path, p.Format(), p.rows(info, heading)); err != nil {
		return path, err
	}
	return path, nil
}
