package shapestyle

import "image"

// ResolverOption configures a Resolver during creation.
// Use functional options to customize Resolver behavior.
//
// Example:
//
//	// Default resolver: no pattern image, fresh clock
//	r := shapestyle.NewResolver()
//
//	// Custom pattern and a clock shared with the UI timeline
//	r := shapestyle.NewResolver(
//	    shapestyle.WithPatternImage(img),
//	    shapestyle.WithClock(clock),
//	)
type ResolverOption func(*resolverOptions)

// resolverOptions holds optional configuration for Resolver creation.
type resolverOptions struct {
	patternImage image.Image
	patternScale float64
	clock        *Clock
	extend       ExtendMode
}

// defaultResolverOptions returns the default resolver options.
func defaultResolverOptions() resolverOptions {
	return resolverOptions{
		patternScale: DefaultPatternScale,
	}
}

// WithPatternImage sets the image tiled by FillImage.
// Without it the image fill resolves to a transparent pattern.
func WithPatternImage(img image.Image) ResolverOption {
	return func(o *resolverOptions) {
		o.patternImage = img
	}
}

// WithPatternScale sets the tile scale of the image fill.
// Non-positive values are ignored.
func WithPatternScale(scale float64) ResolverOption {
	return func(o *resolverOptions) {
		if scale > 0 {
			o.patternScale = scale
		}
	}
}

// WithClock sets the animation clock sampled by ResolveFrame.
// A nil clock is ignored.
func WithClock(c *Clock) ResolverOption {
	return func(o *resolverOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithGradientExtend sets how the color-item gradients continue past
// their last stop. The default is ExtendPad.
func WithGradientExtend(mode ExtendMode) ResolverOption {
	return func(o *resolverOptions) {
		o.extend = mode
	}
}
