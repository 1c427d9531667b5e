// Package geom holds the value types of the projective plane: homogeneous
// complex coordinates for points and lines, six-coefficient conics, and the
// projective transformations acting on them.
//
// Values here are plain data. Nothing in this package knows about names,
// observers or propagation; see package scene for that.
package geom
