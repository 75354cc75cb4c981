// Package aggregates defines domain-facing aggregate contracts.
//
// Contracts here describe the persistence port the services depend on; they carry no
// transport or storage detail. Adapters live in internal/data.
package aggregates
