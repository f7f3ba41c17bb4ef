package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func testRules(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "weapons.json", `{"rules":[
		{"id":"Skyrim.esm","value":"vanilla"},
		{"id":"*sword","value":"swords","limit":"editorid"},
		{"id":"0x00000800","value":"formid"}
	]}`)
	writeFile(t, dir, "keywords.yaml", "rules:\n  - id: WeapTypeSword\n    value: typed\n    limit: keywords\n")
	writeFile(t, dir, "notes.txt", "ignored")
	return dir
}

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "kinds",
			args: []string{"classify", "012EB7:Skyrim.esm", "Skyrim.esm", "IronSword", "0x00012EB7", "bad:id"},
			want: "012EB7:Skyrim.esm\tFormKey\t012EB7:Skyrim.esm\n" +
				"Skyrim.esm\tModKey\tSkyrim.esm\n" +
				"IronSword\tName\tIronSword\n" +
				"0x00012EB7\tFormID\t0x00012EB7\n" +
				"bad:id\tInvalid\tbad:id\n",
		},
		{
			name: "skse format and prefix",
			args: []string{"classify", "--prefixes", "!", "--format", "skse", "!012EB7:Skyrim.esm"},
			want: "!012EB7:Skyrim.esm\tFormKey\t0x12EB7~Skyrim.esm\tprefix=!\n",
		},
		{
			name: "strict",
			args: []string{"classify", "--strict", "Iron Sword"},
			want: "Iron Sword\tInvalid\tIron Sword\n",
		},
		{
			name: "json",
			args: []string{"classify", "--json", "IronSword"},
			want: `[{"input":"IronSword","kind":"Name","id":"IronSword"}]` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	_, _, err := run(t, "classify", "--format", "bogus", "x")
	assert.Error(t, err)
}

func TestMatchCommand(t *testing.T) {
	rulesDir := testRules(t)
	dir := t.TempDir()
	record := writeFile(t, dir, "sword.json",
		`{"formKey":"012EB7:Skyrim.esm","editorId":"IronSword","keywords":["01E711:Skyrim.esm"]}`)
	keywords := writeFile(t, dir, "keywords.json",
		`[{"formKey":"01E711:Skyrim.esm","editorId":"WeapTypeSword"}]`)

	out, _, err := run(t, "match", "--rules", rulesDir, "--record", record, "--keywords", keywords, "--keyword-cache", "8")
	require.NoError(t, err)
	assert.Equal(t, "012EB7:Skyrim.esm\n"+
		"  vanilla\tSkyrim.esm\n"+
		"  swords\t*sword\n"+
		"  typed\tWeapTypeSword\n", out)

	out, _, err = run(t, "match", "--rules", rulesDir, "--record", record, "--fields", "editorid")
	require.NoError(t, err)
	assert.Equal(t, "012EB7:Skyrim.esm\n  swords\t*sword\n", out)

	_, _, err = run(t, "match", "--rules", rulesDir, "--record", record, "--fields", "bogus")
	assert.Error(t, err)

	_, _, err = run(t, "match", "--record", record)
	assert.Error(t, err)
}

func TestMatchCommandSingleFileAndMetrics(t *testing.T) {
	rulesDir := testRules(t)
	record := writeFile(t, t.TempDir(), "records.json",
		`[{"formKey":"000D62:Dawnguard.esm","editorId":"DLC1Sword"},{"formKey":"000001:Other.esp"}]`)

	out, stderr, err := run(t, "--metrics", "match", "--rules", filepath.Join(rulesDir, "weapons.json"), "--record", record)
	require.NoError(t, err)
	assert.Equal(t, "000D62:Dawnguard.esm\n  swords\t*sword\n000001:Other.esp\n", out)
	assert.Contains(t, stderr, "recid_index_queries_total 2")
	assert.Contains(t, stderr, "recid_rules_skipped_total 1")
}

func TestStatsCommand(t *testing.T) {
	out, _, err := run(t, "stats", "--rules", testRules(t), "--skipped", "--codec", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Blobs: 2\nRules: 3\nSkipped: 1\n")
	assert.Contains(t, out, `weapons.json[2] "0x00000800"`)
	assert.Contains(t, out, "Entries: 3")

	_, _, err = run(t, "stats", "--rules", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	_, _, err = run(t, "--log-format", "xml", "stats", "--rules", testRules(t))
	assert.Error(t, err)
}

func TestUnknownCodec(t *testing.T) {
	_, _, err := run(t, "stats", "--rules", testRules(t), "--codec", "gob")
	assert.ErrorContains(t, err, "unknown codec")
}
