// Package names provides the naming facilities of a scene: a Dictionary that
// maps names to live objects and enforces uniqueness, and a NameGenerator that
// proposes fresh default names.
//
// Neither type is safe for concurrent use. A scene owns one of each and all
// calls happen on the scene's update thread.
package names
