package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/YCP-Swarm-Robotics-Capstone-2020-2021/swarm-website-visualization/pkg/action/snapshot"
	"github.com/YCP-Swarm-Robotics-Capstone-2020-2021/swarm-website-visualization/pkg/constgen"
)

func init() {
	rootCmd.AddCommand(NewSnapshotCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var manifestPath string

	var snapCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "manage generated constant-table snapshots",
	}
	snapCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "consts_manifest.yaml", "snapshot manifest path")

	var (
		options = constgen.NewOptions()
		name    string
		version string
	)
	var recordCmd = &cobra.Command{
		Use:   "record",
		Short: "regenerate the constant table and record it in the manifest",
		RunE: func(c *cobra.Command, args []string) error {
			applyConfigDefaults(c, options)
			out, err := snapshot.Generate(options, manifestPath, name, version)
			if err != nil {
				return err
			}
			slog.Info("recorded snapshot", "name", name, "version", version, "file", out)
			return nil
		},
	}
	recordCmd.Flags().StringVarP(&options.Input, "input", "i", constgen.DefaultInput, "directive config file to read")
	recordCmd.Flags().StringVarP(&options.Output, "output", "o", constgen.DefaultOutput, "generated source file to write")
	recordCmd.Flags().StringVar(&options.Lang, "lang", constgen.LangRust, "output dialect (rust, go)")
	recordCmd.Flags().StringVarP(&options.Package, "package", "p", "", "package clause for go output")
	recordCmd.Flags().StringVarP(&name, "name", "n", "input_consts", "snapshot name")
	recordCmd.Flags().StringVarP(&version, "snapshot-version", "v", "", "snapshot version")
	_ = recordCmd.MarkFlagRequired("snapshot-version")

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "list recorded snapshots",
		RunE: func(c *cobra.Command, args []string) error {
			m, err := snapshot.List(manifestPath)
			if err != nil {
				return err
			}
			for _, s := range m.Snapshots {
				marker := " "
				if s.Version == m.CurrentVersion {
					marker = "*"
				}
				fmt.Fprintf(os.Stdout, "%s %s\t%s\t%s\t%s\n", marker, s.Version, s.Name, s.Lang, s.File)
			}
			return nil
		},
	}

	var diffCmd = &cobra.Command{
		Use:   "diff",
		Short: "diff the current snapshot against the previous one",
		RunE: func(c *cobra.Command, args []string) error {
			d, err := snapshot.DiffCurrentWithPrevious(manifestPath)
			if err != nil {
				return err
			}
			if d == "" {
				fmt.Fprintln(os.Stdout, "no changes")
				return nil
			}
			fmt.Fprint(os.Stdout, d)
			return nil
		},
	}

	snapCmd.AddCommand(recordCmd, listCmd, diffCmd)
	return snapCmd
}
