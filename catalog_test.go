package shapestyle

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestCatalogOrder(t *testing.T) {
	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"fills", idsOf(Fills), []string{"red", "blue", "image"}},
		{"color items", idsOf(ColorItems), []string{"red", "linearGradient", "radialGradient", "angularGradient"}},
		{"weights", idsOf(Weights), []string{"primary", "secondary", "tertiary", "quaternary", "quinary"}},
		{"pages", idsOf(Pages), []string{"colors", "blends", "shaders"}},
		{"shaders", idsOf(ShaderKinds), []string{
			"mix", "bilinear", "colorize", "ripple", "channelOffset", "voronoi",
			"voronoiManhattan", "voronoiText", "truchetQuadCircleText",
			"truchetQuadLine", "truchetQuadCircle",
		}},
		{"blend modes", idsOf(BlendModes), []string{
			"normal", "multiply", "screen", "overlay", "darken", "lighten",
			"colorDodge", "colorBurn", "softLight", "hardLight", "difference",
			"exclusion", "hue", "saturation", "color", "luminosity", "sourceAtop",
			"destinationOver", "destinationOut", "plusDarker", "plusLighter",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("ids = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func idsOf[T Option](c *Catalog[T]) []string {
	var out []string
	for _, v := range c.All() {
		out = append(out, v.ID())
	}
	return out
}

func TestCatalogSizes(t *testing.T) {
	if n := BlendModes.Len(); n != 21 {
		t.Errorf("BlendModes.Len() = %d, want 21", n)
	}
	if n := ShaderKinds.Len(); n != 11 {
		t.Errorf("ShaderKinds.Len() = %d, want 11", n)
	}
	if n := Fills.Len(); n != 3 {
		t.Errorf("Fills.Len() = %d, want 3", n)
	}
}

func TestDisplayLabels(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"fill", FillImage.String(), "Image"},
		{"color item", ColorLinearGradient.String(), "Lineargradient"},
		{"weight", WeightQuaternary.String(), "Quaternary"},
		{"shader", ShaderChannelOffset.String(), "Channeloffset"},
		{"page", PageShaders.String(), "Shaders"},
		// Blend mode labels are hand-authored, not title-cased.
		{"blend mode", BlendColorDodge.String(), "colorDodge"},
		{"unknown fill", FillKind(9).String(), "FillKind(9)"},
		{"unknown blend", BlendMode(200).String(), "BlendMode(200)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("label = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestCatalogParse(t *testing.T) {
	for _, m := range BlendModes.All() {
		got, err := BlendModes.Parse(m.ID())
		if err != nil || got != m {
			t.Errorf("Parse(%q) = %v, %v; want %v", m.ID(), got, err, m)
		}
	}

	_, err := Fills.Parse("green")
	if !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("Parse(green) error = %v, want ErrInvalidSelection", err)
	}
	var se *SelectionError
	if !errors.As(err, &se) || se.Catalog != "fill" || se.Value != "green" {
		t.Errorf("Parse(green) error = %#v, want SelectionError{fill, green}", err)
	}
}

func TestShaderLegacyIDs(t *testing.T) {
	tests := map[string]ShaderKind{
		"vornoi":          ShaderVoronoi,
		"vornoiManhattan": ShaderVoronoiManhattan,
		"vornoiText":      ShaderVoronoiText,
	}
	for id, want := range tests {
		got, err := ShaderKinds.Parse(id)
		if err != nil || got != want {
			t.Errorf("Parse(%q) = %v, %v; want %v", id, got, err, want)
		}
		// Legacy ids are accepted but never produced.
		if got.ID() == id {
			t.Errorf("%v.ID() = legacy id %q", got, id)
		}
	}
}

func TestCatalogStep(t *testing.T) {
	tests := []struct {
		name  string
		from  FillKind
		delta int
		want  FillKind
	}{
		{"forward", FillRed, 1, FillBlue},
		{"wrap forward", FillImage, 1, FillRed},
		{"wrap backward", FillRed, -1, FillImage},
		{"large delta", FillBlue, 7, FillImage},
		{"unknown starts at first", FillKind(50), 1, FillBlue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fills.Step(tt.from, tt.delta); got != tt.want {
				t.Errorf("Step(%v, %d) = %v, want %v", tt.from, tt.delta, got, tt.want)
			}
		})
	}
	if i := BlendModes.Index(BlendPlusLighter); i != 20 {
		t.Errorf("Index(plusLighter) = %d, want 20", i)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := Weights.All()
	all[0] = WeightQuinary
	if Weights.All()[0] != WeightPrimary {
		t.Error("mutating All() result changed the catalog")
	}
}

type savedSelection struct {
	Fill   FillKind      `json:"fill"`
	Blend  BlendMode     `json:"blend"`
	Item   ColorItemKind `json:"item"`
	Weight Weight        `json:"weight"`
	Shader ShaderKind    `json:"shader"`
	Page   Page          `json:"page"`
}

func TestSelectionTextEncoding(t *testing.T) {
	in := savedSelection{
		Fill:   FillImage,
		Blend:  BlendSoftLight,
		Item:   ColorAngularGradient,
		Weight: WeightTertiary,
		Shader: ShaderTruchetQuadLine,
		Page:   PageBlends,
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"fill":"image","blend":"softLight","item":"angularGradient","weight":"tertiary","shader":"truchetQuadLine","page":"blends"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var out savedSelection
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out != in {
		t.Errorf("Unmarshal() = %+v, want %+v", out, in)
	}
}

func TestSelectionTextEncoding_Stale(t *testing.T) {
	var out savedSelection
	err := json.Unmarshal([]byte(`{"blend":"vividLight"}`), &out)
	if !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("Unmarshal(stale blend) error = %v, want ErrInvalidSelection", err)
	}

	if _, err := json.Marshal(savedSelection{Weight: Weight(7)}); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("Marshal(out of range weight) error = %v, want ErrInvalidSelection", err)
	}
}

func TestBlendModeClasses(t *testing.T) {
	var separable, nonSeparable []string
	for _, m := range BlendModes.All() {
		if m.IsSeparable() && m.IsNonSeparable() {
			t.Errorf("%v is in both classes", m)
		}
		if m.IsSeparable() {
			separable = append(separable, m.ID())
		}
		if m.IsNonSeparable() {
			nonSeparable = append(nonSeparable, m.ID())
		}
	}
	if len(separable) != 11 || separable[0] != "multiply" || separable[10] != "exclusion" {
		t.Errorf("separable = %v", separable)
	}
	if want := []string{"hue", "saturation", "color", "luminosity"}; !reflect.DeepEqual(nonSeparable, want) {
		t.Errorf("non-separable = %v, want %v", nonSeparable, want)
	}
}
