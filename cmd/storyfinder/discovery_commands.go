package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"storyfinder/internal/discovery"
	"storyfinder/internal/fileutil"
	"storyfinder/internal/story"
)

func newLocateCommand(ctx *commandContext) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Find the game installation under the known Steam roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if verbose {
				candidates := svc.Locator().Candidates()
				rows := make([][]string, 0, len(candidates))
				for i, c := range candidates {
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						c.Path,
						yesNo(fileutil.Exists(c.AppsDir)),
						yesNo(fileutil.Exists(c.Path)),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Candidate", "Root", "Present"},
					rows,
					1,
				))
			}

			root, ok := svc.Locate()
			if !ok {
				fmt.Fprintln(out, "Game installation not found")
				return nil
			}
			fmt.Fprintln(out, root)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show every candidate path that was probed")
	return cmd
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [PATH]",
		Short: "Find the story data directory and report its layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			var root string
			if len(args) > 0 {
				root = args[0]
			} else {
				located, ok := svc.Locate()
				if !ok {
					printOutcome(out, discovery.Report{Outcome: discovery.OutcomeInstallNotFound})
					return nil
				}
				root = located
			}

			dir, ok := svc.Resolve(root)
			if !ok {
				printOutcome(out, discovery.Report{Outcome: discovery.OutcomeStoryDirNotFound, InstallRoot: root})
				return nil
			}
			fmt.Fprintf(out, "%s (%s)\n", dir.Path, dir.Shape)
			return nil
		},
	}
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var category string

	cmd := &cobra.Command{
		Use:   "list [PATH]",
		Short: "Enumerate story assets from the master database and loose files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := ctx.runDiscovery(cmd, args)
			if err != nil {
				return err
			}
			report.Stories = story.Filter(report.Stories, category)
			if asJSON {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			if report.Outcome != discovery.OutcomeOK {
				printOutcome(out, report)
				return nil
			}
			if len(report.Stories) == 0 {
				fmt.Fprintf(out, "No stories found in %s\n", report.Directory.Path)
				return nil
			}
			rows := make([][]string, 0, len(report.Stories))
			for _, s := range report.Stories {
				rows = append(rows, []string{s.ID, s.Category, s.Group, s.RelPath, s.Path})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Category", "Group", "Relative Path", "Path"},
				rows,
				1,
			))
			fmt.Fprintf(out, "%d stories in %s (%s)\n", len(report.Stories), report.Directory.Path, report.Directory.Shape)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the discovery report as JSON")
	cmd.Flags().StringVar(&category, "category", "", "Only list stories in this category")
	return cmd
}
