/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package cmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCmapBfchar(t *testing.T) {
	data := []byte("1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n" +
		"2 beginbfchar\n<0041> <0042>\n<0042> <>\nendbfchar")

	cm, err := LoadCmapFromData(data)
	require.NoError(t, err)
	require.Equal(t, 2, cm.CodeLength(1))

	s, ok := cm.CharcodeToUnicode(0x0041)
	require.True(t, ok)
	require.Equal(t, "B", s)

	// An empty hex target maps the code to no text, distinct from "not found".
	s, ok = cm.CharcodeToUnicode(0x0042)
	require.True(t, ok)
	require.Equal(t, "", s)

	_, ok = cm.CharcodeToUnicode(0x0043)
	require.False(t, ok)
}

func TestLoadCmapBfrangeArrayForm(t *testing.T) {
	data := []byte("1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n" +
		"1 beginbfrange\n<0000> <0002> [<0041> <0042> <0043>]\nendbfrange")

	cm, err := LoadCmapFromData(data)
	require.NoError(t, err)

	for code, want := range map[CharCode]string{0: "A", 1: "B", 2: "C"} {
		s, ok := cm.CharcodeToUnicode(code)
		require.True(t, ok)
		require.Equal(t, want, s)
	}
}

func TestLoadCmapBfrangeHexIncrementForm(t *testing.T) {
	data := []byte("1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n" +
		"1 beginbfrange\n<0020> <0023> <0061>\nendbfrange")

	cm, err := LoadCmapFromData(data)
	require.NoError(t, err)

	for i, want := range []string{"a", "b", "c", "d"} {
		s, ok := cm.CharcodeToUnicode(CharCode(0x20 + i))
		require.True(t, ok)
		require.Equal(t, want, s)
	}
}

func TestLoadCmapSurrogatePair(t *testing.T) {
	data := []byte("1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n" +
		"1 beginbfchar\n<0001> <D83DDE00>\nendbfchar")

	cm, err := LoadCmapFromData(data)
	require.NoError(t, err)

	s, ok := cm.CharcodeToUnicode(1)
	require.True(t, ok)
	require.Equal(t, "😀", s)
}

func TestBytesToCharcodesMixedWidthCodespace(t *testing.T) {
	// A CMap declaring both a 1-byte and a 2-byte codespace range must
	// split a byte string using whichever range each prefix matches,
	// not a single uniform width.
	data := []byte("2 begincodespacerange\n<00> <80>\n<8100> <FFFF>\nendcodespacerange")

	cm, err := LoadCmapFromData(data)
	require.NoError(t, err)

	codes, ok := cm.BytesToCharcodes([]byte{0x41, 0x81, 0x00, 0x42})
	require.True(t, ok)
	require.Equal(t, []CharCode{0x41, 0x8100, 0x42}, codes)
}

func TestBytesToCharcodesNoCodespaceMatch(t *testing.T) {
	data := []byte("1 begincodespacerange\n<0000> <00FF>\nendcodespacerange")
	cm, err := LoadCmapFromData(data)
	require.NoError(t, err)

	_, ok := cm.BytesToCharcodes([]byte{0xFF, 0xFF})
	require.False(t, ok)
}

func TestLoadCmapNoCodespaceIsBad(t *testing.T) {
	_, err := LoadCmapFromData([]byte("1 beginbfchar\n<0041> <0042>\nendbfchar"))
	require.ErrorIs(t, err, ErrBadCMap)
}

func TestCharcodeBytesToUnicodeCountsMissing(t *testing.T) {
	data := []byte("1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n" +
		"1 beginbfchar\n<0041> <0042>\nendbfchar")
	cm, err := LoadCmapFromData(data)
	require.NoError(t, err)

	text, missing := cm.CharcodeBytesToUnicode([]byte{0x00, 0x41, 0x00, 0x99})
	require.Equal(t, "B"+MissingCodeString, text)
	require.Equal(t, 1, missing)
}

func TestNewToUnicodeCMapDirect(t *testing.T) {
	cm := NewToUnicodeCMap(map[CharCode]rune{0x20: ' ', 0x41: 'A'})
	require.Equal(t, 2, cm.CodeLength(9))

	s, ok := cm.CharcodeToUnicode(0x41)
	require.True(t, ok)
	require.Equal(t, "A", s)

	codes, ok := cm.BytesToCharcodes([]byte{0x00, 0x20, 0x00, 0x41})
	require.True(t, ok)
	require.Equal(t, []CharCode{0x20, 0x41}, codes)
}

func TestCMapString(t *testing.T) {
	cm, err := LoadCmapFromData([]byte("1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange"))
	require.NoError(t, err)
	require.Contains(t, cm.String(), "codespaces:1")
}
