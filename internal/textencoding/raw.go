/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import "golang.org/x/text/encoding/charmap"

// DecodeRawLatin1 decodes raw as ISO-8859-1, the §4.3 "raw" fallback applied
// when no font encoding information is usable at all. charmap.ISO8859_1 is
// a straight byte->rune identity mapping over 0x00-0xff, but we go through
// golang.org/x/text rather than hand-rolling that cast so the fallback path
// shares its decoder with the rest of the ecosystem.
func DecodeRawLatin1(raw []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		// charmap.ISO8859_1 cannot fail to decode (it is a total 1-byte
		// mapping), but fall back to a manual cast defensively.
		runes := make([]rune, len(raw))
		for i, b := range raw {
			runes[i] = rune(b)
		}
		return string(runes)
	}
	return string(out)
}
