package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingManifest(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Empty(t, m.CurrentVersion)
	require.Empty(t, m.Snapshots)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "manifest.yaml")

	m := &Manifest{}
	m.AddSnapshot(Snapshot{Name: "input_consts", Version: "v1", Lang: "rust", File: "src/input/input_consts.rs"})
	m.AddSnapshot(Snapshot{Name: "input_consts", Version: "v2", Lang: "rust", File: "src/input/input_consts.rs"})
	require.NoError(t, m.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestAddSnapshot(t *testing.T) {
	m := &Manifest{}

	m.AddSnapshot(Snapshot{Name: "input_consts", Version: "v1", File: "a.rs"})
	require.Equal(t, "v1", m.CurrentVersion)
	require.Empty(t, m.PreviousVersion)

	m.AddSnapshot(Snapshot{Name: "input_consts", Version: "v2", File: "b.rs"})
	require.Equal(t, "v2", m.CurrentVersion)
	require.Equal(t, "v1", m.PreviousVersion)
	require.Len(t, m.Snapshots, 2)

	// Re-recording the same name and version replaces the entry in place.
	m.AddSnapshot(Snapshot{Name: "input_consts", Version: "v2", File: "c.rs"})
	require.Len(t, m.Snapshots, 2)
	require.Equal(t, "c.rs", m.SnapshotFile("v2"))
}

func TestSnapshotFile(t *testing.T) {
	m := &Manifest{Snapshots: []Snapshot{{Name: "input_consts", Version: "v1", File: "a.rs"}}}
	require.Equal(t, "a.rs", m.SnapshotFile("v1"))
	require.Empty(t, m.SnapshotFile("v9"))
}

func TestLoadMalformedManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644))
	_, err := Load(path)
	require.ErrorContains(t, err, "unmarshal manifest")
}
