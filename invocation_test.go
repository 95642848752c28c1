package shapestyle

import (
	"errors"
	"testing"
)

func TestInvocationValidate(t *testing.T) {
	tests := []struct {
		name    string
		inv     Invocation
		wantErr bool
	}{
		{"bilinear ok", Invocation{Program: ProgramBilinear, Params: []Param{Float2(1, 2)}}, false},
		{"unknown program", Invocation{Program: "sepia"}, true},
		{"too few", Invocation{Program: ProgramMix, Params: []Param{Float(1)}}, true},
		{"wrong kind", Invocation{Program: ProgramColorize, Params: []Param{Float(1)}}, true},
		{"voronoi ok", Invocation{Program: ProgramVoronoi, Params: []Param{Float2(1, 1), Float(0)}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inv.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrSignatureMismatch) {
				t.Errorf("Validate() error = %v, want ErrSignatureMismatch", err)
			}
		})
	}
}

func TestProgramSignature_Copy(t *testing.T) {
	sig, ok := ProgramSignature(ProgramRipple)
	if !ok || len(sig) != 4 {
		t.Fatalf("ProgramSignature(ripple) = %v, %v", sig, ok)
	}
	sig[0] = ParamColor
	again, _ := ProgramSignature(ProgramRipple)
	if again[0] != ParamFloat2 {
		t.Error("mutating a returned signature changed the registry")
	}
	if _, ok := ProgramSignature("nope"); ok {
		t.Error("ProgramSignature(nope) reported ok")
	}
}

func TestParam(t *testing.T) {
	tests := []struct {
		p     Param
		str   string
		comps int
	}{
		{Float(0.5), "float(0.5)", 1},
		{Float2(3, 4), "float2(3, 4)", 2},
		{ColorParam(RGBA{R: 1, A: 1}), "color(1, 0, 0, 1)", 4},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.p.Kind.Components(); got != tt.comps {
			t.Errorf("%v.Components() = %d, want %d", tt.p.Kind, got, tt.comps)
		}
	}
	if c := ColorParam(SystemPurple).Color(); c != SystemPurple {
		t.Errorf("Color() = %+v, want SystemPurple", c)
	}
	if v := Float2(7, 8).Vec2(); v != (Point{X: 7, Y: 8}) {
		t.Errorf("Vec2() = %+v", v)
	}
}
