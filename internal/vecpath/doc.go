// Package vecpath owns the vector-path input layer of the export pipeline.
//
// Responsibilities: sampling vector outlines (lines and Bézier curves) into
// polylines, per-outline bounding boxes, and loading the vectorizer's SVG
// output into per-frame outline lists.
// Key types: Point, BoundingBox, Outline, FrameGeometry.
//
// Dependency rule: vecpath depends on nothing above the standard library;
// the laser and ilda packages depend on it, never the reverse.
package vecpath
