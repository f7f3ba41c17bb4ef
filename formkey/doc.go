// Package formkey provides the key types that identify game-data records.
//
// Three key shapes exist:
//
//   - FormID: a bare 32-bit numeric key ("0x0001A3F2"). The top byte is the
//     load-order index of the owning plugin, so a FormID alone does not name a
//     record outside a specific load order.
//   - ModKey: a plugin (container) file name such as "Skyrim.esm".
//   - FormKey: a 24-bit local ID within a ModKey ("0001A3:Skyrim.esm").
//
// Mod names compare case-insensitively. Use Fold to obtain a value that is
// safe to use as a map key.
//
// # Formats
//
// FormKeys render in several conventions:
//
//	fk.Format(formkey.Default)     // "0001A3:Skyrim.esm"
//	fk.Format(formkey.SKSEDefault) // "0x1A3~Skyrim.esm"
//
// All formats parse back to the same FormKey with ParseFormKey.
package formkey
