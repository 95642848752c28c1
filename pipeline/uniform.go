package pipeline

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shapestyle"
)

// UniformField is one parameter's slot in the uniform buffer.
type UniformField struct {
	// Offset is the byte offset from the start of the buffer.
	Offset uint32
	// Format is the component layout of the slot.
	Format gputypes.VertexFormat
}

// UniformLayout is the WGSL uniform-buffer layout of a program's
// parameters, in declaration order.
type UniformLayout struct {
	Fields []UniformField
	// Size is the buffer size, rounded up to 16 bytes.
	Size uint32
}

// slot returns the WGSL size, alignment and format of a parameter kind.
func slot(kind shapestyle.ParamKind) (size, align uint32, format gputypes.VertexFormat, ok bool) {
	switch kind {
	case shapestyle.ParamFloat:
		return 4, 4, gputypes.VertexFormatFloat32, true
	case shapestyle.ParamFloat2:
		return 8, 8, gputypes.VertexFormatFloat32x2, true
	case shapestyle.ParamColor:
		return 16, 16, gputypes.VertexFormatFloat32x4, true
	default:
		return 0, 0, 0, false
	}
}

// LayoutFor computes the uniform layout of a program's signature.
func LayoutFor(program string) (UniformLayout, error) {
	sig, ok := shapestyle.ProgramSignature(program)
	if !ok {
		return UniformLayout{}, fmt.Errorf("pipeline: unknown program %q", program)
	}
	var l UniformLayout
	var offset uint32
	for i, kind := range sig {
		size, align, format, ok := slot(kind)
		if !ok {
			return UniformLayout{}, fmt.Errorf("pipeline: %s parameter %d has unsupported kind %s", program, i, kind)
		}
		offset = alignUp(offset, align)
		l.Fields = append(l.Fields, UniformField{Offset: offset, Format: format})
		offset += size
	}
	l.Size = alignUp(offset, 16)
	return l, nil
}

// PackUniforms validates an invocation and writes its parameters into a
// uniform buffer following its program's layout. Floats are stored as
// little-endian float32; colors are straight alpha.
func PackUniforms(inv shapestyle.Invocation) ([]byte, error) {
	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	layout, err := LayoutFor(inv.Program)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, layout.Size)
	for i, p := range inv.Params {
		off := layout.Fields[i].Offset
		for c := 0; c < p.Kind.Components(); c++ {
			binary.LittleEndian.PutUint32(buf[off+uint32(c)*4:], math.Float32bits(float32(p.V[c])))
		}
	}
	return buf, nil
}

func alignUp(v, align uint32) uint32 {
	return (v + align - 1) / align * align
}
