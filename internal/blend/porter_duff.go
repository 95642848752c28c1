package blend

import "math"

// sourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func sourceOver(s, d premul) premul {
	inv := 1 - s.a
	return premul{s.r + d.r*inv, s.g + d.g*inv, s.b + d.b*inv, s.a + d.a*inv}
}

// sourceAtop composites source over destination, keeping destination alpha.
// Formula: S * Da + D * (1 - Sa)
func sourceAtop(s, d premul) premul {
	inv := 1 - s.a
	return premul{s.r*d.a + d.r*inv, s.g*d.a + d.g*inv, s.b*d.a + d.b*inv, d.a}
}

// destinationOver composites destination over source.
// Formula: S * (1 - Da) + D
func destinationOver(s, d premul) premul {
	inv := 1 - d.a
	return premul{s.r*inv + d.r, s.g*inv + d.g, s.b*inv + d.b, s.a*inv + d.a}
}

// destinationOut keeps destination where source is transparent.
// Formula: D * (1 - Sa)
func destinationOut(s, d premul) premul {
	inv := 1 - s.a
	return premul{d.r * inv, d.g * inv, d.b * inv, d.a * inv}
}

// plusLighter adds source and destination, saturating at 1.
// Formula: min(1, S + D)
func plusLighter(s, d premul) premul {
	return premul{
		math.Min(1, s.r+d.r),
		math.Min(1, s.g+d.g),
		math.Min(1, s.b+d.b),
		math.Min(1, s.a+d.a),
	}
}

// plusDarker adds the inverted channels and inverts the sum, saturating at 0.
// Formula: max(0, Ao - ((Da - D) + (Sa - S))) with Ao = min(1, Sa + Da)
func plusDarker(s, d premul) premul {
	a := math.Min(1, s.a+d.a)
	ch := func(sc, dc float64) float64 {
		return math.Max(0, a-((d.a-dc)+(s.a-sc)))
	}
	return premul{ch(s.r, d.r), ch(s.g, d.g), ch(s.b, d.b), a}
}
