// Package bezier evaluates and samples the editor's single cubic Bezier curve.
//
// A curve is defined by two endpoints (P0, P1) and two handles (H0, H1) and
// runs P0 → H0 → H1 → P1. Points are computed with the de Casteljau
// construction: three levels of pairwise linear interpolation collapsing the
// four control points into one.
//
// Sampling returns fresh slices; callers own the storage and are free to
// reuse or discard it between frames.
package bezier
