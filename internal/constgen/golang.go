package constgen

import (
	"os"
	"path"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"golang.org/x/mod/modfile"
)

// RenderGo emits the records as a Go source file: two lint-suppression
// header lines followed by one const block, declarations in input order.
// Names, types, and initializers are carried verbatim; jennifer's renderer
// runs the result through gofmt, so syntactically invalid Go surfaces as a
// render error rather than a broken file.
func RenderGo(consts []Const, pkgName string) *jen.File {
	f := jen.NewFile(pkgName)
	f.HeaderComment("//nolint:unused")
	f.HeaderComment("//nolint:revive")
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, c := range consts {
			stmt := jen.Id(c.Name)
			if c.Type != "" {
				stmt.Id(c.Type)
			}
			stmt.Op("=").Id(c.Value)
			g.Add(stmt)
		}
	})
	return f
}

// PackageName picks the package clause for a generated Go file. When the
// output directory is itself a module root, the module path's final element
// wins; otherwise the directory base is used.
func PackageName(outDir string) string {
	if data, err := os.ReadFile(filepath.Join(outDir, "go.mod")); err == nil {
		if mf, err := modfile.Parse("go.mod", data, nil); err == nil && mf.Module != nil {
			return path.Base(mf.Module.Mod.Path)
		}
	}
	abs, err := filepath.Abs(outDir)
	if err != nil {
		return filepath.Base(outDir)
	}
	return filepath.Base(abs)
}
