package index_test

import (
	"fmt"

	"github.com/hupe1980/recid"
	"github.com/hupe1980/recid/formkey"
	"github.com/hupe1980/recid/index"
)

func Example() {
	skyrim := formkey.NewModKey("Skyrim", formkey.Master)

	b := index.NewBuilder[string]()
	_ = b.Add(recid.Classify("IronSword"), "iron")
	_ = b.Add(recid.Wildcard("sword"), "swords")
	_ = b.Add(recid.Classify("Skyrim.esm"), "vanilla")
	idx := b.Freeze()

	rec := &recid.StaticRecord{
		Key:  formkey.New(skyrim, 0x12EB7),
		EDID: "IronSword",
	}
	for m := range idx.FindAll(rec, recid.MaskAll, nil) {
		fmt.Println(m.Value, m.IDs)
	}
	// Output:
	// vanilla [Skyrim.esm]
	// iron [IronSword]
	// swords [*sword]
}
