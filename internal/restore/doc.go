// Package restore rewrites shortened markdown links back to their original
// hrefs. The engine is a pure transformation over document content; the
// runner drives it across a directory tree, reading and writing files and
// collecting a per-run summary.
package restore
