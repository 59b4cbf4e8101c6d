// Package laser compiles vector-path frame geometry into ILDA laser frames.
//
// The pipeline is a fixed two-phase transformation. Phase one is global and
// must finish before any per-frame work: aggregate every outline's bounding
// box, mark outer-frame scan artifacts, and build the single coordinate
// normalizer shared by all frames (temporal stability depends on the mapping
// never being recomputed per frame). Phase two walks the frames in order,
// filtering noise outlines and emitting device points with blanking flags.
//
// The central invariant: every input frame produces exactly one output
// frame. A frame whose outlines are all filtered away still emits a single
// blanked placeholder point, because playback hardware equates one frame
// with one time step.
package laser
