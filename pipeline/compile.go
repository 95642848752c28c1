package pipeline

import (
	"fmt"
	"time"

	"github.com/gogpu/naga"

	"github.com/gogpu/shapestyle"
	"github.com/gogpu/shapestyle/internal/cache"
)

// DefaultModuleCacheSize is the number of compiled modules kept when no
// WithCacheSize option is given. It covers the whole library.
const DefaultModuleCacheSize = 16

// Module is a compiled shader program.
type Module struct {
	// Program is the library name of the program.
	Program string
	// SPIRV is the compiled code as little-endian 32-bit words.
	SPIRV []uint32
	// VertexEntry and FragmentEntry name the stages.
	VertexEntry   string
	FragmentEntry string
}

// CompilerOption configures a Compiler.
type CompilerOption func(*compilerOptions)

type compilerOptions struct {
	cacheSize int
	compile   func(string) ([]byte, error)
}

// WithCacheSize bounds the number of compiled modules kept in memory.
// Zero keeps every module.
func WithCacheSize(n int) CompilerOption {
	return func(o *compilerOptions) {
		if n >= 0 {
			o.cacheSize = n
		}
	}
}

// withCompileFunc replaces the WGSL compiler; used by tests.
func withCompileFunc(f func(string) ([]byte, error)) CompilerOption {
	return func(o *compilerOptions) {
		o.compile = f
	}
}

// Compiler turns library programs into SPIR-V modules and caches them.
// It is safe for concurrent use.
type Compiler struct {
	modules *cache.Cache[string, *Module]
	compile func(string) ([]byte, error)
}

// NewCompiler creates a compiler backed by naga.
func NewCompiler(opts ...CompilerOption) *Compiler {
	o := compilerOptions{
		cacheSize: DefaultModuleCacheSize,
		compile:   naga.Compile,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Compiler{
		modules: cache.New[string, *Module](o.cacheSize),
		compile: o.compile,
	}
}

// Compile returns the module for a program, compiling it on first use.
// Failed compilations are not cached.
func (c *Compiler) Compile(program string) (*Module, error) {
	return c.modules.GetOrCreate(program, func() (*Module, error) {
		src, err := Source(program)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		code, err := c.compile(src)
		if err != nil {
			shapestyle.Logger().Warn("shader compilation failed", "program", program, "err", err)
			return nil, fmt.Errorf("pipeline: compile %s: %w", program, err)
		}
		words, err := spirvWords(code)
		if err != nil {
			return nil, fmt.Errorf("pipeline: compile %s: %w", program, err)
		}
		shapestyle.Logger().Debug("compiled shader",
			"program", program, "words", len(words), "elapsed", time.Since(start))
		return &Module{
			Program:       program,
			SPIRV:         words,
			VertexEntry:   VertexEntryPoint,
			FragmentEntry: FragmentEntryPoint,
		}, nil
	})
}

// CompileAll compiles every program in the library.
func (c *Compiler) CompileAll() ([]*Module, error) {
	names := Programs()
	out := make([]*Module, 0, len(names))
	for _, name := range names {
		m, err := c.Compile(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Stats reports module cache statistics.
func (c *Compiler) Stats() cache.Stats {
	return c.modules.Stats()
}

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// spirvWords converts SPIR-V bytes to little-endian 32-bit words.
func spirvWords(code []byte) ([]uint32, error) {
	if len(code)%4 != 0 {
		return nil, fmt.Errorf("SPIR-V length %d is not a multiple of 4", len(code))
	}
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = uint32(code[i*4]) |
			uint32(code[i*4+1])<<8 |
			uint32(code[i*4+2])<<16 |
			uint32(code[i*4+3])<<24
	}
	if len(words) == 0 || words[0] != spirvMagic {
		return nil, fmt.Errorf("missing SPIR-V magic number")
	}
	return words, nil
}
