// Package translation defines the translation record and the pure functions
// that operate on a single record.
//
// # Record Shape
//
// A Translation is keyed by an immutable, non-blank Key. Base holds the
// reference text and Locales maps a locale code (en-us, zh-tw, ...) to the
// translated string. A missing locale and an empty string both mean
// "untranslated". New guarantees that en-us (defaulted to Base) and zh-tw
// (defaulted to "") are always present.
//
// Created and Updated are milliseconds since the Unix epoch. Every mutating
// helper returns a new record with Updated refreshed; records are never
// changed in place.
//
// # Completeness
//
// Complete is derived, never stored: a record is complete when every required
// locale is present and non-blank after trimming.
//
// # Errors
//
// Caller bugs (blank keys, blank locale codes, records that fail Validate)
// are reported as errors wrapping ErrInvalidArgument:
//
//	rec, err := translation.UpdateLocale(rec, "zh-tw", "亞洲")
//	if errors.Is(err, translation.ErrInvalidArgument) {
//		// programmer error at the call site
//	}
//
// # Wire Format
//
// The remote payload is a JSON object mapping key to {"base": ..., "<locale>": ...}.
// ParsePayload keeps document order so the collection loads in the order the
// server wrote it; EncodePayload writes the reverse transform in collection order.
package translation
