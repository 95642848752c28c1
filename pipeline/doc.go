// Package pipeline describes how a resolved shapestyle.Style runs on the
// GPU: the WGSL program behind each shader name, its compiled SPIR-V
// module, the uniform buffer holding the bound parameters, and the
// fixed-function blend state for a blend mode.
//
// The package does not own a device. It produces the inputs a WebGPU host
// needs to build a render pipeline.
//
// # Quick Start
//
//	c := pipeline.NewCompiler()
//	mod, err := c.Compile(inv.Program)
//	if err != nil {
//	    return err
//	}
//	uniforms, err := pipeline.PackUniforms(inv)
//	if err != nil {
//	    return err
//	}
//	state, ok := pipeline.BlendStateFor(style.Mode())
//
// Every program shares a full-screen vertex stage (vs_main) and exposes a
// fragment stage (fs_main). Binding 0 of group 0 is the uniform buffer,
// bindings 1 and 2 are the source texture and its sampler.
package pipeline
