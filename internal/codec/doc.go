// Package codec classifies raw QR payloads and converts between payload
// strings and structured field sets.
//
// Decoding runs [Detect] to pick a [models.ContentKind] from the ordered
// grammar table and [Parse] to extract display fields. Encoding runs a
// [Builder] over a [models.FieldSet]. Everything here is pure: no I/O, no
// logging, and no error is ever returned for string input.
package codec
