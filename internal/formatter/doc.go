// Package formatter projects playlist entries into rows and writes them to CSV or Markdown files.
//
// Every export is described by a [Projection]. A projection knows its row shape, its file name and its
// [Format]; [WriteRows] is the only routine that touches the filesystem. The six projections, in the
// order used whenever several are run together:
//
//	urls                 [url]                 <stem>_urls.csv
//	indexed_urls         [index, url]          <stem>_indexed_urls.csv
//	titles               [title]               <stem>_titles.csv
//	indexed_titles       [index, title]        <stem>_indexed_titles.csv
//	indexed_titles_urls  [index, title, url]   <stem>_indexed_titles_urls.csv
//	markdown             heading + link lines  <stem>.md
//
// The stem is the sanitized playlist title. Indices start at 1. Existing files are overwritten.
package formatter
