// Package loader reads asset map documents.  A document is a single JSON array
// of record objects; it is downloaded in full with afs (so any afs supported
// URL works, local paths included), decoded into asset records with a case-sensitive decoder and checked
// against an embedded JSON schema that requires every record field to be
// present with the expected JSON type.  A document that fails any step is
// rejected as a whole.
package loader
