package state

import (
	"math"

	"github.com/gogpu/shapestyle"
)

// Separation limits for the blends page, in pixels.
const (
	MinSeparation     = 0.0
	MaxSeparation     = 250.0
	DefaultSeparation = 100.0
)

// Selection is everything a user can pick across the three pages.
type Selection struct {
	Page       shapestyle.Page
	Left       shapestyle.FillSelection
	Right      shapestyle.FillSelection
	Separation float64
	Weight     shapestyle.Weight
	Shader     shapestyle.ShaderKind
}

// Default returns the initial selection: the colors page, a red circle
// under a blue one, both blended normally.
func Default() Selection {
	return Selection{
		Page:       shapestyle.PageColors,
		Left:       shapestyle.FillSelection{Fill: shapestyle.FillRed, Blend: shapestyle.BlendNormal},
		Right:      shapestyle.FillSelection{Fill: shapestyle.FillBlue, Blend: shapestyle.BlendNormal},
		Separation: DefaultSeparation,
		Weight:     shapestyle.WeightPrimary,
		Shader:     shapestyle.ShaderMix,
	}
}

// Validate reports the first field outside its catalog.
func (s Selection) Validate() error {
	for _, v := range []validator{
		s.Page, s.Left.Fill, s.Left.Blend, s.Right.Fill, s.Right.Blend, s.Weight, s.Shader,
	} {
		if _, err := v.MarshalText(); err != nil {
			return err
		}
	}
	return nil
}

// ClampSeparation limits v to [MinSeparation, MaxSeparation].
func ClampSeparation(v float64) float64 {
	switch {
	case math.IsNaN(v), v < MinSeparation:
		return MinSeparation
	case v > MaxSeparation:
		return MaxSeparation
	}
	return v
}

// Field identifies one member of a Selection.
type Field uint8

const (
	FieldPage Field = iota
	FieldLeftFill
	FieldLeftBlend
	FieldRightFill
	FieldRightBlend
	FieldSeparation
	FieldWeight
	FieldShader
)

// fieldKeys are the Encode keys, indexed by Field.
var fieldKeys = []string{
	"page", "left_fill", "left_blend", "right_fill", "right_blend",
	"separation", "weight", "shader",
}

// Fields lists every field in encoding order.
func Fields() []Field {
	out := make([]Field, len(fieldKeys))
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// Key returns the field's encoding key.
func (f Field) Key() string {
	if int(f) >= len(fieldKeys) {
		return ""
	}
	return fieldKeys[f]
}

// String implements fmt.Stringer.
func (f Field) String() string { return f.Key() }

// diff lists the fields that differ between a and b.
func diff(a, b Selection) []Field {
	var out []Field
	add := func(f Field, changed bool) {
		if changed {
			out = append(out, f)
		}
	}
	add(FieldPage, a.Page != b.Page)
	add(FieldLeftFill, a.Left.Fill != b.Left.Fill)
	add(FieldLeftBlend, a.Left.Blend != b.Left.Blend)
	add(FieldRightFill, a.Right.Fill != b.Right.Fill)
	add(FieldRightBlend, a.Right.Blend != b.Right.Blend)
	add(FieldSeparation, a.Separation != b.Separation)
	add(FieldWeight, a.Weight != b.Weight)
	add(FieldShader, a.Shader != b.Shader)
	return out
}
