package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/YCP-Swarm-Robotics-Capstone-2020-2021/swarm-website-visualization/internal/wasmbuild"
)

func init() {
	rootCmd.AddCommand(NewBuildCommand())
}

func NewBuildCommand() *cobra.Command {
	var options wasmbuild.Options

	// buildCmd wraps the fixed wasm-pack command line and the JS minify step
	var buildCmd = &cobra.Command{
		Use:   "build",
		Short: "build the wasm package",
		Long:  "Build the WebAssembly package with wasm-pack and minify the generated JS shim",
		RunE: func(c *cobra.Command, args []string) error {
			if err := wasmbuild.Run(c.Context(), options); err != nil {
				return err
			}
			slog.Info("done")
			if options.NoMinJS {
				return nil
			}
			slog.Info("minifying js", "input", wasmbuild.JSPathIn)
			if err := wasmbuild.MinifyJS(wasmbuild.JSPathIn, wasmbuild.JSPathOut); err != nil {
				return err
			}
			slog.Info("done", "output", wasmbuild.JSPathOut)
			return nil
		},
	}
	buildCmd.Flags().BoolVarP(&options.Release, "release", "r", false, "create a release build; dev/debug build is assumed otherwise")
	buildCmd.Flags().BoolVar(&options.NoMinJS, "no-minjs", false, "disable the creation of a *.min.js")
	buildCmd.Flags().BoolVar(&options.NoModules, "no-modules", false, "use the 'no-modules' build target instead of 'web'")

	return buildCmd
}
