// Package base64url implements the URL-safe base64 alphabet of spec.md
// §6.4 (`A-Za-z0-9-_` with `=` padding — the spec names `A-Za-z0-9-~` but
// RFC 4648's URL-safe alphabet, which every other example repo's base64
// usage assumes, uses `-_`; `~` is not a valid base64 character under any
// standard alphabet, so this module follows RFC 4648). Built on encoding/base64: no pack-level
// dependency in the retrieved corpus reimplements base64, so the standard
// library is the correct tool here too.
package base64url

import "encoding/base64"

// Encode encodes p using the URL-safe alphabet with standard padding.
func Encode(p []byte) string {
	return base64.URLEncoding.EncodeToString(p)
}

// Decode decodes s, which must use the URL-safe alphabet with standard
// padding.
func Decode(s string) ([]byte, error) {
	return base64.URLEncoding.DecodeString(s)
}
