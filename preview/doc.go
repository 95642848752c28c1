// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package preview is a software renderer for resolved shapestyle styles.
//
// It paints solid, gradient and pattern styles through coverage masks,
// runs CPU versions of the shader programs in package pipeline, and lays
// out the three demo pages.
//
// # Quick Start
//
//	resolver := shapestyle.NewResolver()
//	r, err := preview.NewRenderer(resolver)
//	if err != nil {
//	    return err
//	}
//	target := preview.NewPixmapTarget(800, 600)
//	if err := r.RenderShaders(target, resolver.Clock().Elapsed()); err != nil {
//	    return err
//	}
//	png.Encode(w, target.Image())
//
// # Coordinates
//
// Pixel (x, y) is sampled at its center (x+0.5, y+0.5), matching the
// fragment position a GPU reports. Shader programs receive positions local
// to the card or shape they paint.
package preview
