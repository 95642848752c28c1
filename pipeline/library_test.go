package pipeline

import (
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/gogpu/shapestyle"
)

func TestProgramsMatchSignatures(t *testing.T) {
	want := []string{
		shapestyle.ProgramBilinear,
		shapestyle.ProgramChannelOffset,
		shapestyle.ProgramColorize,
		shapestyle.ProgramMix,
		shapestyle.ProgramRipple,
		shapestyle.ProgramTruchetQuadCircle,
		shapestyle.ProgramTruchetQuadLine,
		shapestyle.ProgramVoronoi,
		shapestyle.ProgramVoronoiManhattan,
	}
	sort.Strings(want)
	if got := Programs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Programs() = %v, want %v", got, want)
	}
	for _, name := range Programs() {
		if _, ok := shapestyle.ProgramSignature(name); !ok {
			t.Errorf("program %q has no signature", name)
		}
	}
}

func TestEveryShaderKindHasProgram(t *testing.T) {
	r := shapestyle.NewResolver()
	for _, kind := range shapestyle.ShaderKinds.All() {
		s, err := r.ResolveShader(kind, 0, shapestyle.Size{W: 64, H: 64})
		if err != nil {
			t.Fatalf("ResolveShader(%v) error = %v", kind, err)
		}
		program := s.(shapestyle.ShaderStyle).Invocation.Program
		if _, err := Source(program); err != nil {
			t.Errorf("%v: Source(%q) error = %v", kind, program, err)
		}
	}
}

func TestSource(t *testing.T) {
	for _, name := range Programs() {
		t.Run(name, func(t *testing.T) {
			src, err := Source(name)
			if err != nil {
				t.Fatalf("Source() error = %v", err)
			}
			for _, want := range []string{"fn " + VertexEntryPoint, "fn " + FragmentEntryPoint, "var<uniform> params"} {
				if !strings.Contains(src, want) {
					t.Errorf("source missing %q", want)
				}
			}
		})
	}
	if _, err := Source("sepia"); err == nil {
		t.Error("Source(sepia) should fail")
	}
}
