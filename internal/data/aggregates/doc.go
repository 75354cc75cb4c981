// Package aggregates contains the relational implementation of the catalog's
// aggregate contracts.
//
// Implementations compose the table-level repos from internal/data/repos and
// own transaction boundaries for every write that touches more than one table.
package aggregates
