/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package cmap implements the subset of the PDF CMap grammar needed to
// consume an embedded ToUnicode CMap stream: codespace ranges and the
// bfchar/bfrange code -> Unicode mappings (9.10.3 ToUnicode CMaps). CID
// range parsing, usecmap inheritance and the predefined CJK CMap bundle
// are teacher features with no caller in a ToUnicode-only consumer and are
// not implemented here.
package cmap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	// maxCodeLen is the largest code length (in bytes) a codespace range can declare.
	maxCodeLen = 4

	// MissingCodeRune replaces codes that have no Unicode mapping.
	MissingCodeRune = '�'

	// MissingCodeString is the string form of MissingCodeRune.
	MissingCodeString = string(MissingCodeRune)
)

// ErrBadCMap is returned when a CMap stream is structurally invalid.
var ErrBadCMap = errors.New("invalid cmap")

// CharCode is a raw character code read from a content-stream string.
type CharCode uint32

// Codespace is one entry of a CMap's codespacerange section: every code in
// [Low, High] is NumBytes bytes long.
type Codespace struct {
	NumBytes int
	Low      CharCode
	High     CharCode
}

// CMap is a parsed ToUnicode CMap: codespace ranges plus the code -> Unicode
// mapping built from its bfchar/bfrange sections.
type CMap struct {
	codespaces    []Codespace
	codeToUnicode map[CharCode]string
}

// NewToUnicodeCMap builds a CMap directly from a code -> rune map, used when
// a font dictionary carries no embedded ToUnicode stream but the caller
// already knows the mapping (e.g. in tests).
func NewToUnicodeCMap(codeToRune map[CharCode]rune) *CMap {
	codeToUnicode := make(map[CharCode]string, len(codeToRune))
	for code, r := range codeToRune {
		codeToUnicode[code] = string(r)
	}
	return &CMap{
		codespaces:    []Codespace{{NumBytes: 2, Low: 0, High: 0xffff}},
		codeToUnicode: codeToUnicode,
	}
}

// LoadCmapFromData parses a ToUnicode CMap stream's bytes.
func LoadCmapFromData(data []byte) (*CMap, error) {
	cmap := &CMap{codeToUnicode: make(map[CharCode]string)}
	parser := newCMapParser(data)
	if err := cmap.parse(parser); err != nil {
		return nil, err
	}
	if len(cmap.codespaces) == 0 {
		return nil, ErrBadCMap
	}
	sort.Slice(cmap.codespaces, func(i, j int) bool {
		return cmap.codespaces[i].Low < cmap.codespaces[j].Low
	})
	return cmap, nil
}

// CharcodeBytesToUnicode converts a full byte string into its Unicode
// translation using this CMap's codespace ranges to determine code
// boundaries. It returns the decoded string and the number of codes that
// had no entry in codeToUnicode (replaced with MissingCodeString).
func (cmap *CMap) CharcodeBytesToUnicode(data []byte) (string, int) {
	codes, _ := cmap.BytesToCharcodes(data)
	var sb strings.Builder
	missing := 0
	for _, code := range codes {
		s, ok := cmap.codeToUnicode[code]
		if !ok {
			missing++
			s = MissingCodeString
		}
		sb.WriteString(s)
	}
	return sb.String(), missing
}

// CharcodeToUnicode converts a single character code to its Unicode string.
func (cmap *CMap) CharcodeToUnicode(code CharCode) (string, bool) {
	s, ok := cmap.codeToUnicode[code]
	if !ok {
		return MissingCodeString, false
	}
	return s, true
}

// BytesToCharcodes splits data into charcodes using the codespace ranges.
// Returns a partial list and false if a prefix of data does not match any
// codespace.
func (cmap *CMap) BytesToCharcodes(data []byte) ([]CharCode, bool) {
	var codes []CharCode
	for i := 0; i < len(data); {
		code, n, matched := cmap.matchCode(data[i:])
		if !matched {
			return codes, false
		}
		codes = append(codes, code)
		i += n
	}
	return codes, true
}

// matchCode matches the shortest codespace-consistent prefix of data,
// trying code lengths 1..maxCodeLen, byte by byte, same as the teacher.
func (cmap *CMap) matchCode(data []byte) (code CharCode, n int, matched bool) {
	for j := 0; j < maxCodeLen; j++ {
		if j < len(data) {
			code = code<<8 | CharCode(data[j])
			n++
		}
		if cmap.inCodespace(code, j+1) {
			return code, n, true
		}
	}
	return 0, 0, false
}

// inCodespace returns true if code is numBytes long and falls within a
// declared codespace range.
func (cmap *CMap) inCodespace(code CharCode, numBytes int) bool {
	for _, cs := range cmap.codespaces {
		if cs.Low <= code && code <= cs.High && numBytes == cs.NumBytes {
			return true
		}
	}
	return false
}

// CodeLength returns the byte length implied by this CMap's codespace
// ranges, or defaultLen if the CMap declares none (the PDF-implicit CID
// font default is 2 bytes per code, per §4.3).
func (cmap *CMap) CodeLength(defaultLen int) int {
	if len(cmap.codespaces) == 0 {
		return defaultLen
	}
	return cmap.codespaces[0].NumBytes
}

// String returns a short description of the CMap, for logging.
func (cmap *CMap) String() string {
	return fmt.Sprintf("CMap{codespaces:%d entries:%d}", len(cmap.codespaces), len(cmap.codeToUnicode))
}
