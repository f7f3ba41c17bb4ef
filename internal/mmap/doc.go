// Package mmap maps rule files read-only into memory so that the local blob
// store can hand out their contents without copying.
//
//	m, err := mmap.Open("rules/weapons.json")
//	if err != nil { ... }
//	defer m.Close()
//	data := m.Bytes()
//
// Unix systems use mmap(2) and madvise(2); Windows uses MapViewOfFile and
// ignores access hints. Empty files are never mapped.
package mmap
