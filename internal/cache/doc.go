// Package cache provides the bounded LRU map fontmatch keeps resolved
// font file paths in.
//
//	paths := cache.New[string, string](64)
//	path, err := paths.GetOrCreate("DejaVu Sans", resolve)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
