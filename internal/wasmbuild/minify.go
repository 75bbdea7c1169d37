package wasmbuild

import (
	"fmt"
	"os"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/js"
)

const jsMediaType = "application/javascript"

// MinifyJS reads the bundled wasm-pack JS shim and writes a minified copy.
func MinifyJS(inPath, outPath string) error {
	src, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read bundled js: %w", err)
	}

	m := minify.New()
	m.AddFunc(jsMediaType, js.Minify)
	out, err := m.Bytes(jsMediaType, src)
	if err != nil {
		return fmt.Errorf("minify js: %w", err)
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("write minified js: %w", err)
	}
	return nil
}
