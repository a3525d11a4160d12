// Package bin2cpp renders binary blobs as C++ byte array declarations and
// definitions.
package bin2cpp

import "strings"

// LineWidth is the maximum number of literal characters per definition line,
// not counting the leading tab.
const LineWidth = 80

// Symbol holds the generated text for one embedded blob.
type Symbol struct {
	Declaration string
	Definition  string
}

// DataName returns the name of the byte array for prefix.
func DataName(prefix string) string { return prefix + "data" }

// SizeName returns the name of the length constant for prefix.
func SizeName(prefix string) string { return prefix + "size" }

// Embed renders data as a pair of extern declarations and the matching
// definitions. The size constant is always a sizeof expression over the
// array. An empty blob is padded with one zero byte and its size expression
// subtracts it again, since C++ does not allow zero-length arrays.
func Embed(data []byte, prefix string) Symbol {
	dataName := DataName(prefix)
	sizeName := SizeName(prefix)

	var decl strings.Builder
	decl.WriteString("extern const unsigned char " + dataName + "[];\n")
	decl.WriteString("extern const size_t " + sizeName + ";")

	sizeExpr := "sizeof(" + dataName + ")"
	literal := data
	if len(literal) == 0 {
		literal = []byte{0}
		sizeExpr += " - 1"
	}

	var def strings.Builder
	def.WriteString("const unsigned char " + dataName + "[] = {\n")
	for _, line := range wrapLiterals(literal, LineWidth) {
		def.WriteString("\t" + line + "\n")
	}
	def.WriteString("};\n")
	def.WriteString("const size_t " + sizeName + " = " + sizeExpr + ";")

	return Symbol{Declaration: decl.String(), Definition: def.String()}
}

const hexdigits = "0123456789ABCDEF"

// wrapLiterals formats data as ", "-separated 0xNN literals and breaks the
// list into lines of at most width characters, only between literals.
func wrapLiterals(data []byte, width int) []string {
	var lines []string
	var line []byte
	for i, b := range data {
		piece := []byte{'0', 'x', hexdigits[b>>4], hexdigits[b&0x0f]}
		if i < len(data)-1 {
			piece = append(piece, ',')
		}
		if len(line) > 0 && len(line)+1+len(piece) > width {
			lines = append(lines, string(line))
			line = line[:0]
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, piece...)
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
