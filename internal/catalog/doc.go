// Package catalog defines the contract shared by the external metadata
// catalog clients and the HTTP plumbing they use.
//
// Every client in the subpackages implements Source: a title search returning
// up to Limit entries with every title variant the catalog exposes, and a
// direct lookup by catalog ID. Scoring is not done here; the resolver ranks
// entries uniformly across catalogs.
//
// Failures are tagged with the services markers: ErrNotFound for a missing
// record, ErrTimeout for a deadline, ErrUpstream for any other non-200 or
// decode failure.
package catalog
