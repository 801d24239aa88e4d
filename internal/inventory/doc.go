// Package inventory loads and validates href inventories: the mapping from
// short tokens to the original URLs they replaced. Two formats are supported,
// the plain-text `short||href` line format produced by the shortening pass
// and a structured YAML format validated against an embedded JSON schema.
package inventory
