// Package splice replaces marker delimited regions of a source file and bumps
// its version declaration. Target files are small, so every operation works
// on the whole text in memory.
package splice
