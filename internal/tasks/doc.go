// Package tasks runs the fetch and export steps of a playlist export.
//
// # Core Operations
//
// [PlaylistEngine] has two operations, always used in this order:
//
//  1. [PlaylistEngine.Fetch] : One flat extraction through a [services.Fetcher]
//     - Applies the configured timeout, if any
//     - Failures wrap [shared.ErrFetch] and are not retried
//
//  2. [PlaylistEngine.Export] : Runs a list of projections over the fetched playlist
//     - Projections run one after another in the order given
//     - Each projection is independent; a failed write is recorded and the next projection still runs
//     - Returns an [ExportResult] with one [ProjectionResult] per projection
//
// The fetched [models.PlaylistInfo] is shared by every projection and never modified.
package tasks
