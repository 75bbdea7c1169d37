package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/YCP-Swarm-Robotics-Capstone-2020-2021/swarm-website-visualization/pkg/constgen"
)

const directives = `Named:
NamePrefix:KEY_
Type:u32
W,87
A,65
`

func TestGenerateRust(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input_consts_config.txt")
	out := filepath.Join(dir, "src", "input", "input_consts.rs")
	require.NoError(t, os.WriteFile(in, []byte(directives), 0o644))

	opts := constgen.NewOptions()
	for _, fn := range []constgen.Option{
		constgen.WithInput(in),
		constgen.WithOutput(out),
	} {
		fn(opts)
	}

	require.NoError(t, Generate(opts))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	want := "#![allow(dead_code)]\n#![allow(non_upper_case_globals)]\n" +
		"pub const KEY_W: u32 = 87;\n" +
		"pub const KEY_A: u32 = 65;\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("generated file mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateGo(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input_consts_config.txt")
	out := filepath.Join(dir, "input", "input_consts.go")
	require.NoError(t, os.WriteFile(in, []byte(directives), 0o644))

	opts := constgen.NewOptions()
	for _, fn := range []constgen.Option{
		constgen.WithInput(in),
		constgen.WithOutput(out),
		constgen.WithLang(constgen.LangGo),
		constgen.WithPackage("input"),
	} {
		fn(opts)
	}

	require.NoError(t, Generate(opts))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(got), "package input")
	require.Contains(t, string(got), "//nolint:unused")
	require.Contains(t, string(got), "KEY_W")
	require.Contains(t, string(got), "KEY_A")
}

func TestGenerateOverwritesPriorOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "config.txt")
	out := filepath.Join(dir, "consts.rs")
	require.NoError(t, os.WriteFile(in, []byte("FOO\n"), 0o644))
	require.NoError(t, os.WriteFile(out, []byte("stale content that must disappear"), 0o644))

	opts := constgen.NewOptions()
	constgen.WithInput(in)(opts)
	constgen.WithOutput(out)(opts)

	require.NoError(t, Generate(opts))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NotContains(t, string(got), "stale")
	require.Contains(t, string(got), "pub const FOO:  = FOO;")
}

func TestGenerateErrors(t *testing.T) {
	t.Run("missing input is fatal", func(t *testing.T) {
		opts := constgen.NewOptions()
		constgen.WithInput(filepath.Join(t.TempDir(), "nope.txt"))(opts)
		constgen.WithOutput(filepath.Join(t.TempDir(), "out.rs"))(opts)
		err := Generate(opts)
		require.ErrorContains(t, err, "read directive file")
	})

	t.Run("malformed named line is fatal and writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "config.txt")
		out := filepath.Join(dir, "out.rs")
		require.NoError(t, os.WriteFile(in, []byte("Named:\nNOCOMMA\n"), 0o644))

		opts := constgen.NewOptions()
		constgen.WithInput(in)(opts)
		constgen.WithOutput(out)(opts)

		err := Generate(opts)
		require.ErrorContains(t, err, "missing comma separator")
		_, err = os.Stat(out)
		require.True(t, os.IsNotExist(err))
	})
}
