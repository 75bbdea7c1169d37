package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/YCP-Swarm-Robotics-Capstone-2020-2021/swarm-website-visualization/pkg/action/generate"
	"github.com/YCP-Swarm-Robotics-Capstone-2020-2021/swarm-website-visualization/pkg/constgen"
)

func init() {
	rootCmd.AddCommand(NewGenCommand())
}

func NewGenCommand() *cobra.Command {
	var (
		options = constgen.NewOptions()
		watch   bool
	)

	// genCmd represents the constant-table generation command
	var genCmd = &cobra.Command{
		Use:   "gen",
		Short: "generate the input constant table",
		Long:  "Generate the input constants source file from the directive config",
		RunE: func(c *cobra.Command, args []string) error {
			applyConfigDefaults(c, options)
			if err := generate.Generate(options); err != nil {
				return err
			}
			slog.Info("generated constants", "input", options.Input, "output", options.Output, "lang", options.Lang)
			if !watch {
				return nil
			}
			return watchAndRegenerate(c.Context(), options)
		},
	}
	genCmd.Flags().StringVarP(&options.Input, "input", "i", constgen.DefaultInput, "directive config file to read")
	genCmd.Flags().StringVarP(&options.Output, "output", "o", constgen.DefaultOutput, "generated source file to write")
	genCmd.Flags().StringVar(&options.Lang, "lang", constgen.LangRust, "output dialect (rust, go)")
	genCmd.Flags().StringVarP(&options.Package, "package", "p", "", "package clause for go output; derived from the output directory when empty")
	genCmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate whenever the directive config changes")

	return genCmd
}

// applyConfigDefaults lets the merged viper config supply generator options
// for flags the user did not set on the command line.
func applyConfigDefaults(c *cobra.Command, options *constgen.Options) {
	for key, target := range map[string]*string{
		"gen.input":   &options.Input,
		"gen.output":  &options.Output,
		"gen.lang":    &options.Lang,
		"gen.package": &options.Package,
	} {
		flag := key[len("gen."):]
		if !c.Flags().Changed(flag) && viper.IsSet(key) {
			*target = viper.GetString(key)
		}
	}
}

// watchAndRegenerate reruns generation on every write to the directive file.
// The parent directory is watched rather than the file itself, since editors
// typically replace the file and drop the original watch.
func watchAndRegenerate(ctx context.Context, options *constgen.Options) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	dir := filepath.Dir(options.Input)
	if err = w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	base := filepath.Base(options.Input)
	slog.Info("watching directive config", "path", options.Input)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err = generate.Generate(options); err != nil {
				slog.Error("regenerate failed", "error", err)
				continue
			}
			slog.Info("regenerated constants", "output", options.Output)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "error", err)
		}
	}
}
