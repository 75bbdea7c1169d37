package generate

import (
	"fmt"
	"os"
	"path/filepath"

	gen "github.com/YCP-Swarm-Robotics-Capstone-2020-2021/swarm-website-visualization/internal/constgen"
	"github.com/YCP-Swarm-Robotics-Capstone-2020-2021/swarm-website-visualization/pkg/constgen"
)

// Generate runs the constant-table generator once: read the directive file,
// fold it into constant records, write the generated source file. The output
// is truncated in place; a failure mid-write leaves a partial file, which is
// acceptable for a build-time generator with no concurrent readers.
func Generate(opts *constgen.Options) error {
	opts.Normalize()

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("read directive file: %w", err)
	}
	consts, err := gen.Transform(data)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(opts.Output); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if opts.Lang == constgen.LangGo {
		pkgName := opts.Package
		if pkgName == "" {
			pkgName = gen.PackageName(filepath.Dir(opts.Output))
		}
		f := gen.RenderGo(consts, pkgName)
		ff, err := os.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("open output file: %w", err)
		}
		if err = f.Render(ff); err != nil {
			_ = ff.Close()
			return fmt.Errorf("render constants: %w", err)
		}
		return ff.Close()
	}

	if err = os.WriteFile(opts.Output, gen.RenderRust(consts), 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
