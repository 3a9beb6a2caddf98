// Package pixel implements the pixel formats, pixel storage and channel conversions used by the
// presentation backends.
//
// A [Buffer] is a contiguous block of rows in a single [Format]. It is compatible with Go's native
// [image.Image] / [draw.Image] interfaces, so applications can draw into it with the standard library
// or any other image code, and it exposes the raw rows for code that writes bytes directly.
package pixel
