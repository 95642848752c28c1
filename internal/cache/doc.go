// Package cache provides the bounded LRU cache used for compiled shader
// modules and rasterized text masks.
//
//	c := cache.New[string, []uint32](32)
//	words, err := c.GetOrCreate("voronoi", compile)
//
// Failed creations are not cached, so a later call retries.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
