// Package recid classifies and matches game record identifiers.
//
// An identifier is one of:
//
//   - a FormKey, "0001A3:MyMod.esm" or "0x1A3~MyMod.esm"
//   - a FormID, "0x0001A3F0"
//   - a ModKey, "MyMod.esm"
//   - a name, an EditorID or display name, optionally a wildcard
//
// Classify turns user input into an ID:
//
//	id := recid.Classify("0x1A3~Skyrim.esm")
//	fmt.Println(id.Kind()) // FormKey
//
// IDs carry a FieldMask limiting which record fields they may match.
// Package index builds an immutable lookup structure over many IDs, and
// ID.MatchRecord tests a single ID against a record directly.
//
// # Matching
//
// Name IDs compare case-insensitively with a record's EditorID, its display
// name and the EditorIDs of its keywords. Wildcard names match any value
// containing them. FormKey and ModKey IDs compare with the record's FormKey,
// its plugin and its keywords' keys.
//
// # Observability
//
// Components accept a *Logger and a MetricsCollector through options. Both
// default to no-ops; package prommetrics exports metrics to Prometheus.
package recid
