// Package main hosts the textgeo command.
//
// The Cobra command tree exposes the words and geom packages from the
// terminal: splitting, counting, and capitalizing text, and describing
// rectangles and bounding boxes built from points given as "x,y" arguments.
// Casing language and normalization come from flags or an optional TOML
// configuration file.
package main
