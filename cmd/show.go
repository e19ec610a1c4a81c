package cmd

import (
	"context"
	"fmt"

	"github.com/dalseo/xticket-ip/internal/extension"
	"github.com/dalseo/xticket-ip/pkg/table"
	"github.com/dalseo/xticket-ip/pkg/util"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// ShowInput is the input of `xticket-ip show`.
type ShowInput struct {
	Output string
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show which server the extension currently points at",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringP("output", "o", "", "Output format (json)")
}

func runShow(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	return newFormCmd().Show(cmd.Context(), ShowInput{Output: output})
}

// Show prints the current state of the three files.
func (f FormCmd) Show(ctx context.Context, in ShowInput) error {
	if in.Output != "" && in.Output != "json" {
		return fmt.Errorf("unsupported --output value: use 'json'")
	}

	loc, err := f.resolve()
	if err != nil {
		f.presenter.Fatal(err)
		return err
	}
	snap := extension.NewConfigurator(loc).Inspect()

	if in.Output == "json" {
		return util.WriteIndentedJSON(f.out, snap)
	}

	rows := pterm.TableData{{"File", "Present", "Server"}}
	rows = append(rows, lo.Map(snap.Artifacts, func(a extension.ArtifactState, _ int) []string {
		return []string{
			a.Name,
			lo.Ternary(a.Present, "yes", "no"),
			util.OrDash(lo.Ternary(a.Error != "", a.Error, a.ServerURL)),
		}
	})...)
	if err := table.PrintTableNoPad(f.out, rows, true); err != nil {
		return err
	}

	fmt.Fprintln(f.out)
	info := pterm.TableData{{"Property", "Value"}}
	info = append(info, []string{"Directory", snap.Dir})
	info = append(info, []string{"Extension", util.OrDash(snap.ExtensionName)})
	info = append(info, []string{"Version", util.OrDash(snap.Version)})
	info = append(info, []string{"Host permissions", util.JoinOrDash(snap.HostPermissions...)})
	if err := table.PrintTableNoPad(f.out, info, true); err != nil {
		return err
	}

	missing := lo.Filter(snap.Artifacts, func(a extension.ArtifactState, _ int) bool { return !a.Present })
	for _, a := range missing {
		pterm.Warning.WithWriter(f.out).Printf("%s is missing; saving will stop there\n", a.Name)
	}
	return nil
}
