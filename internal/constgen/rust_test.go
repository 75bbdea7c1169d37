package constgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func TestRenderRust(t *testing.T) {
	tests := []struct {
		name   string
		consts []Const
		want   string
	}{
		{
			name:   "header only for an empty table",
			consts: nil,
			want:   "#![allow(dead_code)]\n#![allow(non_upper_case_globals)]\n",
		},
		{
			name: "records land verbatim in input order",
			consts: []Const{
				{Name: "KEY_W", Type: "u32", Value: "87"},
				{Name: "SEP", Type: "char", Value: ","},
			},
			want: "#![allow(dead_code)]\n#![allow(non_upper_case_globals)]\n" +
				"pub const KEY_W: u32 = 87;\n" +
				"pub const SEP: char = ,;\n",
		},
		{
			name: "empty type is not special-cased",
			consts: []Const{
				{Name: "FOO", Value: "FOO"},
			},
			want: "#![allow(dead_code)]\n#![allow(non_upper_case_globals)]\n" +
				"pub const FOO:  = FOO;\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, string(RenderRust(tt.consts)))
		})
	}
}

// TestGenerateRustFixture runs the full transform-and-render pipeline over the
// archived directive config and compares against the archived expectation.
func TestGenerateRustFixture(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "canonical.txtar"))
	require.NoError(t, err)

	ar := txtar.Parse(data)
	files := make(map[string][]byte, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = f.Data
	}
	require.Contains(t, files, "input_consts_config.txt")
	require.Contains(t, files, "input_consts.rs")

	consts, err := Transform(files["input_consts_config.txt"])
	require.NoError(t, err)
	require.Len(t, consts, 4)

	got := string(RenderRust(consts))
	if diff := cmp.Diff(string(files["input_consts.rs"]), got); diff != "" {
		t.Errorf("generated output mismatch (-want +got):\n%s", diff)
	}
}
