package wasmbuild

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/mod/semver"
)

// minVersion is the oldest wasm-pack known to accept the fixed command line
// below (--out-dir with --no-typescript).
const minVersion = "v0.9.1"

// Fixed paths from the project layout.
const (
	JSPathIn  = "build/swarm_website_visualization.js"
	JSPathOut = "build/swarm_website_visualization.min.js"
)

// Options select the wasm-pack invocation.
//
// Release   – release build; dev/debug build otherwise
// NoModules – use the "no-modules" target instead of "web"
// NoMinJS   – skip creation of the *.min.js
type Options struct {
	Release   bool `json:"release,omitempty" yaml:"release,omitempty" mapstructure:"release,omitempty"`
	NoModules bool `json:"no_modules,omitempty" yaml:"no_modules,omitempty" mapstructure:"no_modules,omitempty"`
	NoMinJS   bool `json:"no_minjs,omitempty" yaml:"no_minjs,omitempty" mapstructure:"no_minjs,omitempty"`
}

// Version asks the wasm-pack binary for its version.
func Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "wasm-pack", "--version").Output()
	if err != nil {
		return "", fmt.Errorf("wasm-pack --version: %w", err)
	}
	return parseVersion(string(out))
}

// parseVersion extracts "0.9.1" from output like "wasm-pack 0.9.1".
func parseVersion(out string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) < 2 {
		return "", fmt.Errorf("unexpected wasm-pack version output %q", strings.TrimSpace(out))
	}
	return fields[len(fields)-1], nil
}

func checkVersion(v string) error {
	canon := "v" + strings.TrimPrefix(v, "v")
	if !semver.IsValid(canon) {
		return fmt.Errorf("unparseable wasm-pack version %q", v)
	}
	if semver.Compare(canon, minVersion) < 0 {
		return fmt.Errorf("wasm-pack %s is older than required %s", v, strings.TrimPrefix(minVersion, "v"))
	}
	return nil
}

// args assembles the fixed wasm-pack command line. The tool is an opaque
// collaborator: no build-graph or packaging semantics live on this side.
func args(opts Options) []string {
	target := "web"
	if opts.NoModules {
		target = "no-modules"
	}
	a := []string{"build", "--out-dir", "build", "--no-typescript", "--target", target}
	if !opts.Release {
		a = append(a, "--dev", "--", "--features", "debug")
	}
	return a
}

// Run gates on the wasm-pack version, then invokes the build, streaming the
// tool's output through. Exit status propagates as the returned error.
func Run(ctx context.Context, opts Options) error {
	v, err := Version(ctx)
	if err != nil {
		return err
	}
	if err = checkVersion(v); err != nil {
		return err
	}

	a := args(opts)
	if opts.Release {
		slog.Info("building release build")
	} else {
		slog.Info("building dev build", "command", "wasm-pack "+strings.Join(a, " "))
	}

	cmd := exec.CommandContext(ctx, "wasm-pack", a...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err = cmd.Run(); err != nil {
		return fmt.Errorf("wasm-pack build: %w", err)
	}
	return nil
}
