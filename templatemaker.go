// Package templatemaker learns a reusable template from example texts that
// share a structural format and uses it to extract the variable portions
// ("holes") from new texts of the same format.
//
// This package contains domain types, the template learning and extraction
// algorithms, and service interfaces following Ben Johnson's Standard Package
// Layout. Implementations of the interfaces live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, bluemonday/).
package templatemaker
