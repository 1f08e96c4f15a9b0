// Package carnet provides an offline-first catalog, search and suggestion
// core for sectioned markdown courseware. It builds a parent/child hierarchy
// and a category taxonomy from numeric file prefixes and embedded front
// matter, ranks entries against multi-criteria filters, scores document
// similarity, and maintains a time- and size-bounded offline cache.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, yaml/).
package carnet
