// Command shapedemo renders one showcase page to a PNG file.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/shapestyle"
	"github.com/gogpu/shapestyle/pipeline"
	"github.com/gogpu/shapestyle/preview"
	"github.com/gogpu/shapestyle/state"
)

func main() {
	var (
		page       = flag.String("page", "colors", "page to render: colors, blends or shaders")
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 600, "image height")
		output     = flag.String("output", "shapes.png", "output file")
		leftFill   = flag.String("left-fill", "red", "left circle fill")
		leftBlend  = flag.String("left-blend", "normal", "left circle blend mode")
		rightFill  = flag.String("right-fill", "blue", "right circle fill")
		rightBlend = flag.String("right-blend", "normal", "right circle blend mode")
		separation = flag.String("separation", "100", "circle separation in pixels (0-250)")
		weight     = flag.String("weight", "primary", "colors page weight")
		extend     = flag.String("extend", "pad", "gradient extend mode: pad, repeat or reflect")
		shader     = flag.String("shader", "", "render a single shader instead of the whole page")
		elapsed    = flag.Float64("time", 0, "animation time in seconds")
		images     = flag.String("image", "", "directory with waimea6, puyo and nasa images")
		showGPU    = flag.Bool("pipeline", false, "print the compiled module, uniforms and blend state of -shader")
		verbose    = flag.Bool("verbose", false, "log resolution and rendering details")
	)
	flag.Parse()

	if *verbose {
		shapestyle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	store := state.NewStore()
	pairs := map[string]string{
		"page":        *page,
		"left_fill":   *leftFill,
		"left_blend":  *leftBlend,
		"right_fill":  *rightFill,
		"right_blend": *rightBlend,
		"separation":  *separation,
		"weight":      *weight,
	}
	if *shader != "" {
		pairs["shader"] = *shader
	}
	if err := store.Restore(pairs); err != nil {
		log.Fatalf("Invalid selection: %v", err)
	}
	sel := store.Snapshot()
	extendMode, err := shapestyle.ParseExtendMode(*extend)
	if err != nil {
		log.Fatalf("Invalid selection: %v", err)
	}

	samples := preview.NewSamples()
	if *images != "" {
		if err := samples.LoadDir(*images); err != nil {
			log.Fatalf("Failed to load images: %v", err)
		}
	}
	pattern, err := samples.Image(shapestyle.ImageWaimea)
	if err != nil {
		log.Fatalf("Failed to load pattern: %v", err)
	}

	resolver := shapestyle.NewResolver(
		shapestyle.WithPatternImage(pattern),
		shapestyle.WithGradientExtend(extendMode),
	)
	if *showGPU {
		if *shader == "" {
			log.Fatal("-pipeline needs -shader")
		}
		s, err := resolver.ResolveShader(sel.Shader, *elapsed, shapestyle.Size{W: float64(*width), H: float64(*height)})
		if err != nil {
			log.Fatalf("Failed to resolve shader: %v", err)
		}
		if err := describe(os.Stdout, pipeline.NewCompiler(), s.(shapestyle.ShaderStyle)); err != nil {
			log.Fatalf("Failed to describe pipeline: %v", err)
		}
	}
	renderer, err := preview.NewRenderer(resolver, preview.WithSamples(samples))
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	target := preview.NewPixmapTarget(*width, *height)
	switch {
	case *shader != "":
		err = renderer.RenderShader(target, sel.Shader, *elapsed)
	case sel.Page == shapestyle.PageColors:
		err = renderer.RenderColors(target, sel.Weight)
	case sel.Page == shapestyle.PageBlends:
		err = renderer.RenderBlends(target, sel.Left, sel.Right, sel.Separation)
	default:
		err = renderer.RenderShaders(target, *elapsed)
	}
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := save(*output, target); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("%s page saved to %s (%dx%d)\n", sel.Page, *output, *width, *height)
}

func save(path string, target *preview.PixmapTarget) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, target.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
