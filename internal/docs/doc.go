// Package docs discovers the documents a restore pass operates on: regular
// files under a root directory whose names carry the document extension.
package docs
