// Package models defines the assistant's entities, Contact and Note, built
// from the value objects in package values. Entities guard their own
// invariants (unique phones, immutable ids, timestamp bookkeeping) and know
// how to convert themselves to and from flat interchange records used by
// the storage layer.
package models
