// Package ledger keeps the wash records held in a sheet.Store consistent
// with what the till shows.
//
// Reads go through a SnapshotCache: a full read of the sheet kept for a few
// seconds. Writes never trust a row position seen earlier; every update and
// delete re-locates its row from the record's composite key (registered
// time, brand, wash type) with a Resolver, acts on it, and then drops the
// snapshot so the next read sees the change.
package ledger
