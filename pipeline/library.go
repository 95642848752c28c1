package pipeline

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/gogpu/shapestyle"
)

// Embedded WGSL shader sources.

//go:embed shaders/fullscreen.wgsl
var fullscreenSource string

//go:embed shaders/mix.wgsl
var mixSource string

//go:embed shaders/bilinear.wgsl
var bilinearSource string

//go:embed shaders/colorize.wgsl
var colorizeSource string

//go:embed shaders/ripple.wgsl
var rippleSource string

//go:embed shaders/channel_offset.wgsl
var channelOffsetSource string

//go:embed shaders/voronoi.wgsl
var voronoiSource string

//go:embed shaders/voronoi_manhattan.wgsl
var voronoiManhattanSource string

//go:embed shaders/truchet_quad_line.wgsl
var truchetQuadLineSource string

//go:embed shaders/truchet_quad_circle.wgsl
var truchetQuadCircleSource string

// Entry points shared by every program.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

var programSources = map[string]string{
	shapestyle.ProgramMix:               mixSource,
	shapestyle.ProgramBilinear:          bilinearSource,
	shapestyle.ProgramColorize:          colorizeSource,
	shapestyle.ProgramRipple:            rippleSource,
	shapestyle.ProgramChannelOffset:     channelOffsetSource,
	shapestyle.ProgramVoronoi:           voronoiSource,
	shapestyle.ProgramVoronoiManhattan:  voronoiManhattanSource,
	shapestyle.ProgramTruchetQuadLine:   truchetQuadLineSource,
	shapestyle.ProgramTruchetQuadCircle: truchetQuadCircleSource,
}

// Programs returns the names of every program in the library, sorted.
func Programs() []string {
	names := make([]string, 0, len(programSources))
	for name := range programSources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source returns the complete WGSL module for a program: the shared
// vertex stage followed by the program's fragment stage.
func Source(program string) (string, error) {
	body, ok := programSources[program]
	if !ok {
		return "", fmt.Errorf("pipeline: unknown program %q", program)
	}
	return fullscreenSource + "\n" + body, nil
}
