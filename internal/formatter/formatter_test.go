package formatter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/desertthunder/ytpl/internal/models"
	"github.com/desertthunder/ytpl/internal/shared"
	th "github.com/desertthunder/ytpl/internal/testing"
)

func TestProjection(t *testing.T) {
	t.Run("All is in export order", func(t *testing.T) {
		want := []string{"urls", "indexed_urls", "titles", "indexed_titles", "indexed_titles_urls", "markdown"}
		got := All()
		if len(got) != len(want) {
			t.Fatalf("expected %d projections, got %d", len(want), len(got))
		}
		for i, p := range got {
			if p.String() != want[i] {
				t.Errorf("projection %d = %s, want %s", i, p, want[i])
			}
		}
	})

	t.Run("Filename", func(t *testing.T) {
		info := th.SamplePlaylist()
		tc := []struct {
			projection Projection
			want       string
		}{
			{URLs, "My List Vol1_urls.csv"},
			{IndexedURLs, "My List Vol1_indexed_urls.csv"},
			{Titles, "My List Vol1_titles.csv"},
			{IndexedTitles, "My List Vol1_indexed_titles.csv"},
			{IndexedTitlesURLs, "My List Vol1_indexed_titles_urls.csv"},
			{Markdown, "My List Vol1.md"},
		}

		for _, tt := range tc {
			t.Run(tt.projection.String(), func(t *testing.T) {
				if got := tt.projection.Filename(info); got != tt.want {
					t.Errorf("Filename() = %q, want %q", got, tt.want)
				}
			})
		}

		t.Run("missing title falls back to playlist", func(t *testing.T) {
			untitled := &models.PlaylistInfo{}
			if got := URLs.Filename(untitled); got != "playlist_urls.csv" {
				t.Errorf("Filename() = %q, want playlist_urls.csv", got)
			}
			if got := Markdown.Filename(untitled); got != "playlist.md" {
				t.Errorf("Filename() = %q, want playlist.md", got)
			}
		})
	})

	t.Run("Format", func(t *testing.T) {
		for _, p := range All() {
			want := FormatCSV
			if p == Markdown {
				want = FormatMarkdown
			}
			if p.Format() != want {
				t.Errorf("%s.Format() = %s, want %s", p, p.Format(), want)
			}
		}
	})

	t.Run("Labels and descriptions", func(t *testing.T) {
		for _, p := range All() {
			if p.Label() == "" || p.Description() == "" {
				t.Errorf("%s is missing a label or description", p)
			}
		}
		if Projection(42).Label() != "Unknown" {
			t.Errorf("expected unknown projection label, got %s", Projection(42).Label())
		}
	})
}

func TestRows(t *testing.T) {
	info := th.SamplePlaylist()

	t.Run("urls", func(t *testing.T) {
		rows := URLs.Rows(info)
		want := [][]string{
			{"https://www.youtube.com/watch?v=abc"},
			{"https://www.youtube.com/watch?v=xyz"},
		}
		assertRows(t, rows, want)
	})

	t.Run("indexed_urls", func(t *testing.T) {
		rows := IndexedURLs.Rows(info)
		want := [][]string{
			{"1", "https://www.youtube.com/watch?v=abc"},
			{"2", "https://www.youtube.com/watch?v=xyz"},
		}
		assertRows(t, rows, want)
	})

	t.Run("titles", func(t *testing.T) {
		assertRows(t, Titles.Rows(info), [][]string{{"One"}, {"Two"}})
	})

	t.Run("indexed_titles", func(t *testing.T) {
		assertRows(t, IndexedTitles.Rows(info), [][]string{{"1", "One"}, {"2", "Two"}})
	})

	t.Run("indexed_titles_urls", func(t *testing.T) {
		rows := IndexedTitlesURLs.Rows(info)
		want := [][]string{
			{"1", "One", "https://www.youtube.com/watch?v=abc"},
			{"2", "Two", "https://www.youtube.com/watch?v=xyz"},
		}
		assertRows(t, rows, want)
	})

	t.Run("markdown", func(t *testing.T) {
		rows := Markdown.Rows(info)
		want := [][]string{
			{"## My List: Vol/1"},
			{""},
			{"1. [One](https://www.youtube.com/watch?v=abc)"},
			{"2. [Two](https://www.youtube.com/watch?v=xyz)"},
		}
		assertRows(t, rows, want)
	})

	t.Run("markdown without title uses default heading", func(t *testing.T) {
		rows := Markdown.Rows(&models.PlaylistInfo{})
		assertRows(t, rows, [][]string{{"## YouTube Playlist"}, {""}})
	})

	t.Run("indices are 1..N in input order", func(t *testing.T) {
		big := &models.PlaylistInfo{Title: "Big"}
		for i := 0; i < 250; i++ {
			big.Entries = append(big.Entries, models.Entry{ID: "id" + strconv.Itoa(i), Title: "same title"})
		}

		for _, p := range []Projection{IndexedURLs, IndexedTitles, IndexedTitlesURLs} {
			rows := p.Rows(big)
			if len(rows) != len(big.Entries) {
				t.Fatalf("%s: expected %d rows, got %d", p, len(big.Entries), len(rows))
			}
			for i, row := range rows {
				if row[0] != strconv.Itoa(i+1) {
					t.Fatalf("%s: row %d has index %s", p, i, row[0])
				}
				if p != IndexedTitles && row[len(row)-1] != "https://www.youtube.com/watch?v=id"+strconv.Itoa(i) {
					t.Fatalf("%s: row %d has URL %s", p, i, row[len(row)-1])
				}
			}
		}
	})

	t.Run("empty playlist", func(t *testing.T) {
		empty := &models.PlaylistInfo{Title: "Empty", Entries: []models.Entry{}}
		for _, p := range All() {
			rows := p.Rows(empty)
			if p == Markdown {
				assertRows(t, rows, [][]string{{"## Empty"}, {""}})
				continue
			}
			if len(rows) != 0 {
				t.Errorf("%s: expected no rows, got %d", p, len(rows))
			}
		}
	})
}

func TestWriteRowsTo(t *testing.T) {
	t.Run("CSV quoting", func(t *testing.T) {
		var buf bytes.Buffer
		rows := [][]string{
			{"1", `Hello, "World"`, "https://www.youtube.com/watch?v=abc"},
			{"2", "plain", "https://www.youtube.com/watch?v=xyz"},
		}
		if err := WriteRowsTo(&buf, FormatCSV, rows); err != nil {
			t.Fatalf("WriteRowsTo failed: %v", err)
		}

		want := "1,\"Hello, \"\"World\"\"\",https://www.youtube.com/watch?v=abc\n" +
			"2,plain,https://www.youtube.com/watch?v=xyz\n"
		if buf.String() != want {
			t.Errorf("unexpected CSV output:\n%s\nwant:\n%s", buf.String(), want)
		}

		records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		if records[0][1] != `Hello, "World"` {
			t.Errorf("expected round trip of quoted field, got %q", records[0][1])
		}
	})

	t.Run("Markdown lines", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteRowsTo(&buf, FormatMarkdown, Markdown.Rows(th.SamplePlaylist())); err != nil {
			t.Fatalf("WriteRowsTo failed: %v", err)
		}

		want := "## My List: Vol/1\n\n" +
			"1. [One](https://www.youtube.com/watch?v=abc)\n" +
			"2. [Two](https://www.youtube.com/watch?v=xyz)\n"
		if buf.String() != want {
			t.Errorf("unexpected Markdown output:\n%s\nwant:\n%s", buf.String(), want)
		}
	})

	t.Run("empty single field is quoted", func(t *testing.T) {
		info := &models.PlaylistInfo{Entries: []models.Entry{
			{ID: "a", Title: "A"},
			{ID: "b", Title: ""},
			{ID: "c", Title: "C"},
		}}

		var buf bytes.Buffer
		if err := WriteRowsTo(&buf, FormatCSV, Titles.Rows(info)); err != nil {
			t.Fatalf("WriteRowsTo failed: %v", err)
		}

		if want := "A\n\"\"\nC\n"; buf.String() != want {
			t.Errorf("unexpected CSV output %q, want %q", buf.String(), want)
		}

		records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d: %q", len(records), records)
		}
		if records[1][0] != "" {
			t.Errorf("expected empty title record, got %q", records[1][0])
		}
	})

	t.Run("empty field in a wider row is left alone", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteRowsTo(&buf, FormatCSV, [][]string{{"1", ""}}); err != nil {
			t.Fatalf("WriteRowsTo failed: %v", err)
		}
		if buf.String() != "1,\n" {
			t.Errorf("unexpected CSV output %q", buf.String())
		}
	})

	t.Run("no rows writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteRowsTo(&buf, FormatCSV, nil); err != nil {
			t.Fatalf("WriteRowsTo failed: %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("expected empty output, got %q", buf.String())
		}
	})

	t.Run("writer failure wraps ErrWrite", func(t *testing.T) {
		for _, format := range []Format{FormatCSV, FormatMarkdown} {
			err := WriteRowsTo(&th.FWriter{}, format, [][]string{{"a"}})
			if !errors.Is(err, shared.ErrWrite) {
				t.Errorf("%s: expected ErrWrite, got %v", format, err)
			}
		}
	})
}

func TestWriteRows(t *testing.T) {
	t.Run("overwrites existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		if err := os.WriteFile(path, []byte("old,content,that,is,longer\nsecond line\n"), 0644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		if err := WriteRows(path, FormatCSV, [][]string{{"new"}}); err != nil {
			t.Fatalf("WriteRows failed: %v", err)
		}

		if got := th.MustReadFile(t, path); got != "new\n" {
			t.Errorf("expected file to be replaced, got %q", got)
		}
	})

	t.Run("missing directory wraps ErrWrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.csv")
		err := WriteRows(path, FormatCSV, [][]string{{"a"}})
		if !errors.Is(err, shared.ErrWrite) {
			t.Errorf("expected ErrWrite, got %v", err)
		}
	})
}

func TestExporter(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		dir := t.TempDir()
		exporter := Exporter{Dir: dir}
		info := th.SamplePlaylist()

		path, err := exporter.Export(URLs, info)
		if err != nil {
			t.Fatalf("Export(urls) failed: %v", err)
		}
		if path != filepath.Join(dir, "My List Vol1_urls.csv") {
			t.Errorf("unexpected path %s", path)
		}
		lines := th.MustReadLines(t, path)
		if len(lines) != 2 || lines[0] != "https://www.youtube.com/watch?v=abc" || lines[1] != "https://www.youtube.com/watch?v=xyz" {
			t.Errorf("unexpected urls export: %q", lines)
		}

		path, err = exporter.Export(IndexedTitlesURLs, info)
		if err != nil {
			t.Fatalf("Export(indexed_titles_urls) failed: %v", err)
		}
		lines = th.MustReadLines(t, path)
		want := []string{
			"1,One,https://www.youtube.com/watch?v=abc",
			"2,Two,https://www.youtube.com/watch?v=xyz",
		}
		if strings.Join(lines, "|") != strings.Join(want, "|") {
			t.Errorf("unexpected indexed_titles_urls export: %q", lines)
		}

		path, err = exporter.Export(Markdown, info)
		if err != nil {
			t.Fatalf("Export(markdown) failed: %v", err)
		}
		lines = th.MustReadLines(t, path)
		want = []string{
			"## My List: Vol/1",
			"",
			"1. [One](https://www.youtube.com/watch?v=abc)",
			"2. [Two](https://www.youtube.com/watch?v=xyz)",
		}
		if strings.Join(lines, "|") != strings.Join(want, "|") {
			t.Errorf("unexpected markdown export: %q", lines)
		}
	})

	t.Run("custom heading for untitled playlist", func(t *testing.T) {
		dir := t.TempDir()
		exporter := Exporter{Dir: dir, Heading: "Watch Later"}

		path, err := exporter.Export(Markdown, &models.PlaylistInfo{Entries: []models.Entry{{ID: "a", Title: "A"}}})
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}
		if path != filepath.Join(dir, "playlist.md") {
			t.Errorf("unexpected path %s", path)
		}
		if lines := th.MustReadLines(t, path); lines[0] != "## Watch Later" {
			t.Errorf("expected custom heading, got %q", lines[0])
		}
	})

	t.Run("all projections line counts", func(t *testing.T) {
		dir := t.TempDir()
		exporter := Exporter{Dir: dir}
		info := th.SamplePlaylist()

		for _, p := range All() {
			path, err := exporter.Export(p, info)
			if err != nil {
				t.Fatalf("Export(%s) failed: %v", p, err)
			}
			want := info.Len()
			if p == Markdown {
				want = info.Len() + 2
			}
			if got := len(th.MustReadLines(t, path)); got != want {
				t.Errorf("%s: expected %d lines, got %d", p, want, got)
			}
		}

		files, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read dir: %v", err)
		}
		if len(files) != 6 {
			t.Errorf("expected 6 files, got %d", len(files))
		}
	})

	t.Run("unknown projection", func(t *testing.T) {
		_, err := Exporter{Dir: t.TempDir()}.Export(Projection(99), th.SamplePlaylist())
		if !errors.Is(err, shared.ErrUnknownProjection) {
			t.Errorf("expected ErrUnknownProjection, got %v", err)
		}
	})
}

func assertRows(t *testing.T, got, want [][]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if strings.Join(got[i], "\x00") != strings.Join(want[i], "\x00") {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}
