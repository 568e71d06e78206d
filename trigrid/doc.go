// Package trigrid implements a triangular tessellation engine for small
// monochrome displays: grid geometry, visibility culling, random pattern
// sampling with centroid mirroring, and patterned line drawing.
//
// The plane is tiled with congruent equilateral triangles in two alternating
// orientations (pointing right and pointing left). One reference triangle at
// grid cell (0,0) acts as the sampling source: random interior points drawn
// there are translated into every visible triangle via the difference of
// centroids, which repeats the same relative pattern across the whole grid.
//
// All geometry is integer arithmetic with truncating division. This is
// deliberate: rounding instead of truncating shifts the vertical seams and
// visibly breaks the grid alignment on a 128x64 display.
//
// The engine draws through the Canvas interface and carries no display or
// input dependencies; callers provide both.
package trigrid
