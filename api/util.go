package api

import "bytes"

// Binarycmp compare key with limit byte by byte. If partial is true and
// limit is shorter than key, only the first len(limit) bytes take part.
func Binarycmp(key, limit []byte, partial bool) int {
	if ln := len(limit); partial && ln < len(key) {
		return bytes.Compare(key[:ln], limit[:ln])
	}
	return bytes.Compare(key, limit)
}
