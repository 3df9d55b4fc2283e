// Package diagnostic turns binding failures into structured, printable
// reports for the command line surface: code tags, failure paths and
// near-miss suggestions, plus ordinary warnings and infos.
package diagnostic
