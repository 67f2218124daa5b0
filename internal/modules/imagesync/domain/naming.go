package domain

import (
	"strings"
	"unicode"
)

// ImageContentType is the content type of every stored render
const ImageContentType = "image/png"

// PageFilter reports whether a page must be left out of a sync
type PageFilter func(pageName string) bool

// pictographicTable covers pictographic code points, the U+203C..U+3299
// symbol block, and the joiners/selectors used to compose emoji sequences
var pictographicTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00a9, Hi: 0x00a9, Stride: 1},
		{Lo: 0x00ae, Hi: 0x00ae, Stride: 1},
		{Lo: 0x200d, Hi: 0x200d, Stride: 1},
		{Lo: 0x203c, Hi: 0x3299, Stride: 1},
		{Lo: 0xfe0f, Hi: 0xfe0f, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f000, Hi: 0x1faff, Stride: 1},
		{Lo: 0xe0020, Hi: 0xe007f, Stride: 1},
	},
	LatinOffset: 2,
}

// keycapTable holds the ASCII characters that carry the Unicode Emoji
// property as keycap bases: '#', '*' and the digits
var keycapTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0023, Hi: 0x0023, Stride: 1},
		{Lo: 0x002a, Hi: 0x002a, Stride: 1},
		{Lo: 0x0030, Hi: 0x0039, Stride: 1},
	},
	LatinOffset: 3,
}

// HasEmoji reports whether name contains any emoji-class character,
// keycap bases included, so "Page 1" and "#tags" match too.
// Pages named this way are treated as decorative and never synced.
func HasEmoji(name string) bool {
	for _, r := range name {
		if unicode.In(r, keycapTable, pictographicTable) {
			return true
		}
	}
	return false
}

// HasPictographicEmoji is HasEmoji without the ASCII keycap bases. Pass it
// as Options.SkipPage to keep numbered or '#'-prefixed pages in the sync.
func HasPictographicEmoji(name string) bool {
	for _, r := range name {
		if unicode.Is(pictographicTable, r) {
			return true
		}
	}
	return false
}

// SanitizeFrameName replaces "/" so a frame name stays a single key segment
func SanitizeFrameName(name string) string {
	return strings.ReplaceAll(name, "/", "-")
}

// ObjectKey is the bucket key of a frame render: <page>/<sanitized-frame>.png
func ObjectKey(pageName, frameName string) string {
	return pageName + "/" + SanitizeFrameName(frameName) + ".png"
}
