package main

import (
	"fmt"
	"io"

	"github.com/gogpu/shapestyle"
	"github.com/gogpu/shapestyle/pipeline"
)

// describe writes the GPU description of a resolved shader: the compiled
// module, its uniform layout and packed bytes, and the blend state.
func describe(w io.Writer, c *pipeline.Compiler, s shapestyle.ShaderStyle) error {
	inv := s.Invocation
	mod, err := c.Compile(inv.Program)
	if err != nil {
		return err
	}
	layout, err := pipeline.LayoutFor(inv.Program)
	if err != nil {
		return err
	}
	data, err := pipeline.PackUniforms(inv)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "program %s: %d SPIR-V words, entries %s/%s\n",
		mod.Program, len(mod.SPIRV), mod.VertexEntry, mod.FragmentEntry)
	fmt.Fprintf(w, "uniforms: %d bytes\n", layout.Size)
	for i, f := range layout.Fields {
		fmt.Fprintf(w, "  param %d: offset %d format %v\n", i, f.Offset, f.Format)
	}
	fmt.Fprintf(w, "  data % x\n", data)

	if bs, ok := pipeline.BlendStateFor(s.Mode()); ok {
		fmt.Fprintf(w, "blend %s: color %+v alpha %+v\n", s.Mode().ID(), bs.Color, bs.Alpha)
	} else {
		fmt.Fprintf(w, "blend %s: shader path\n", s.Mode().ID())
	}
	return nil
}
