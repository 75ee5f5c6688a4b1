// Package encode writes patches out in the formats named by package
// format: as JSON or YAML documents, as JSON Patch operations, as a short
// summary of row counts or as a colorable listing for people to read.
package encode
