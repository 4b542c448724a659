// Package cli is the till operator's interactive shell.
//
// Listings number their rows for the operator. Those numbers are only an
// index into the last listing: every command that acts on a row turns the
// number into the record's composite key before calling the ledger, and
// any listing shown before a deletion is refreshed afterwards.
package cli
