// Package sheet is the remote tabular store the ledger is written to: a
// two-dimensional grid of text cells addressed by 1-based row and column,
// with the column titles in row 1. The grid has no row identifiers; a row
// is known only by its current position, which changes when an earlier row
// is deleted.
//
// Four backends implement Store: an in-process MemoryStore, SQLiteStore and
// PostgresStore keeping one table row per cell, and S3Store keeping the
// whole sheet as a CSV object.
package sheet
