// Package style derives presentation data from a user's stored attributes and
// wardrobe: attribute labels, wardrobe statistics, style tips and clamped
// recommendation scores.
//
// Every function is pure and total over its input domain. Unknown codes, empty
// sequences and absent optional fields map to defined fallback output and never
// to an error, so callers can render whatever the backend returned.
package style
