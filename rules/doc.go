// Package rules loads rule documents from a blobstore.BlobStore into an
// index.Builder.
//
// A rule maps an identifier string to a value:
//
//	{"rules": [
//	    {"id": "Skyrim.esm", "value": "vanilla"},
//	    {"id": "*sword", "value": "swords", "limit": "editorid,name"}
//	]}
//
// Documents are JSON (.json), JSON lines with one rule per line (.jsonl) or
// YAML (.yaml, .yml). A trailing .zst or .lz4 selects zstd or lz4 frame
// decompression. An id starting with '*' registers a wildcard name.
//
// Blobs are fetched and decoded concurrently; rules are registered in blob
// name order and, within a blob, in document order. Rules that do not
// classify to an indexable identifier are reported in Report.Skipped and do
// not abort the load.
package rules
