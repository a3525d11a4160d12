package bin2cpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputEmpty(t *testing.T) {
	out := NewOutput("", "GfxEmbeddedShaders.h")
	assert.Equal(t, "#pragma once\n// clang-format off\nnamespace Rush\n{\n}", out.Header())
	assert.Equal(t, "#include \"GfxEmbeddedShaders.h\"\n// clang-format off\nnamespace Rush\n{\n}", out.Source())
}

func TestOutputAggregation(t *testing.T) {
	out := NewOutput("Rush", "GfxEmbeddedShaders.h")
	out.Add(Embed([]byte{0x01}, "SPV_a_"))
	out.Add(Embed([]byte{0x02}, "DXBC_a_"))

	assert.Equal(t, "#pragma once\n"+
		"// clang-format off\n"+
		"namespace Rush\n"+
		"{\n"+
		"extern const unsigned char SPV_a_data[];\n"+
		"extern const size_t SPV_a_size;\n"+
		"extern const unsigned char DXBC_a_data[];\n"+
		"extern const size_t DXBC_a_size;\n"+
		"}", out.Header())

	assert.Equal(t, "#include \"GfxEmbeddedShaders.h\"\n"+
		"// clang-format off\n"+
		"namespace Rush\n"+
		"{\n"+
		"const unsigned char SPV_a_data[] = {\n"+
		"\t0x01\n"+
		"};\n"+
		"const size_t SPV_a_size = sizeof(SPV_a_data);\n"+
		"const unsigned char DXBC_a_data[] = {\n"+
		"\t0x02\n"+
		"};\n"+
		"const size_t DXBC_a_size = sizeof(DXBC_a_data);\n"+
		"}", out.Source())
}

func TestOutputNamespace(t *testing.T) {
	out := NewOutput("Gfx", "shaders.h")
	assert.Contains(t, out.Header(), "namespace Gfx\n{\n")
	assert.Contains(t, out.Source(), "#include \"shaders.h\"\n")
}
