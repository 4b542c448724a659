// Package models defines the wash-job record, its composite natural key, the
// fixed vocabularies offered to operators, and the codec between records and
// rows of the remote grid.
//
// # Wire format
//
// Each record occupies one grid row with the columns of Columns, in order:
//
//	Date | RegisteredTime | Brand | WashType | DeliveryTime | Price | PaymentMethod
//
// Dates are written as dd/mm/yyyy and times as HH:MM. Prices are written with
// two decimals but are read back through NormalizePrice, because operators
// (and older rows) may store "12,50 €" or similar. An empty payment method
// cell means the job has not been paid yet.
package models
