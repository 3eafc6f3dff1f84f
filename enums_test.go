package vkcore

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bitConstants parses file and groups every *_BIT constant by its type.
func bitConstants(t *testing.T, file string) map[string]map[string]uint64 {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), file, nil, 0)
	require.NoError(t, err)

	bits := map[string]map[string]uint64{}
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			ident, ok := vs.Type.(*ast.Ident)
			if !ok || len(vs.Values) != 1 {
				continue
			}
			lit, ok := vs.Values[0].(*ast.BasicLit)
			if !ok {
				continue
			}
			name := vs.Names[0].Name
			if !strings.HasSuffix(name, "_BIT") && !strings.Contains(name, "_BIT_") {
				continue
			}
			v, err := strconv.ParseUint(lit.Value, 0, 64)
			require.NoError(t, err, name)
			if bits[ident.Name] == nil {
				bits[ident.Name] = map[string]uint64{}
			}
			bits[ident.Name][name] = v
		}
	}
	return bits
}

func TestFlagBitsArePowersOfTwo(t *testing.T) {
	for _, file := range []string{"flags.go", "surface.go", "debug_report.go"} {
		groups := bitConstants(t, file)
		require.NotEmpty(t, groups, file)

		for typ, members := range groups {
			var union uint64
			for name, v := range members {
				assert.True(t, v != 0 && v&(v-1) == 0, "%s.%s = %#x", typ, name, v)
				assert.Zero(t, union&v, "%s.%s overlaps another bit", typ, name)
				union |= v
			}
		}
	}
}

func TestFlagUnions(t *testing.T) {
	assert.Equal(t, SHADER_STAGE_VERTEX_BIT|SHADER_STAGE_TESSELLATION_CONTROL_BIT|
		SHADER_STAGE_TESSELLATION_EVALUATION_BIT|SHADER_STAGE_GEOMETRY_BIT|SHADER_STAGE_FRAGMENT_BIT,
		SHADER_STAGE_ALL_GRAPHICS)
	assert.Equal(t, CULL_MODE_FRONT_BIT|CULL_MODE_BACK_BIT, CULL_MODE_FRONT_AND_BACK)
	assert.Equal(t, STENCIL_FACE_FRONT_BIT|STENCIL_FACE_BACK_BIT, STENCIL_FRONT_AND_BACK)

	flags := MEMORY_PROPERTY_HOST_VISIBLE_BIT | MEMORY_PROPERTY_HOST_COHERENT_BIT
	assert.True(t, flags.Has(MEMORY_PROPERTY_HOST_VISIBLE_BIT))
	assert.True(t, flags.Has(MEMORY_PROPERTY_HOST_VISIBLE_BIT|MEMORY_PROPERTY_HOST_COHERENT_BIT))
	assert.False(t, flags.Has(MEMORY_PROPERTY_DEVICE_LOCAL_BIT|MEMORY_PROPERTY_HOST_VISIBLE_BIT))
}

func TestVersionPacking(t *testing.T) {
	assert.Equal(t, API_VERSION_1_0, MakeVersion(1, 0, 0))

	v := MakeVersion(1, 3, 275)
	assert.EqualValues(t, 1, VersionMajor(v))
	assert.EqualValues(t, 3, VersionMinor(v))
	assert.EqualValues(t, 275, VersionPatch(v))
}

func TestBool32(t *testing.T) {
	assert.Equal(t, TRUE, BoolToBool32(true))
	assert.Equal(t, FALSE, BoolToBool32(false))
	assert.True(t, Bool32(2).Bool())
}
