package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/chemist4u/internal/wire"
)

// DoctorCmd inspects the data files and reports data-quality findings.
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the data files for problems",
		Long: `Check that the catalog and cart files are present and reparse both,
reporting every row whose malformed fields had to be defaulted.

Examples:
  chemist doctor          # Full report
  chemist doctor --quiet  # Exit code only (0=clean, 1=findings)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := wire.DoctorService().Diagnose(cmd.Context())
			if err != nil {
				return err
			}

			if !quiet {
				printCheck(report.CatalogPresent, fmt.Sprintf("catalog store (%d products)", report.CatalogProducts))
				printCheck(report.CartPresent, fmt.Sprintf("cart store (%d entries)", report.CartEntries))
				for _, f := range report.Findings {
					fmt.Printf("%s %s row %q: defaulted %s\n",
						color.New(color.FgYellow).Sprint("!"), f.Store, f.RowID, strings.Join(f.Defaulted, ", "))
				}
				if len(report.Findings) == 0 {
					fmt.Println("No data-quality findings.")
				}
			}

			if len(report.Findings) > 0 || !report.CatalogPresent || !report.CartPresent {
				return fmt.Errorf("%d finding(s)", len(report.Findings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress output, exit code only")
	return cmd
}

func printCheck(ok bool, label string) {
	if ok {
		fmt.Printf("✓ %s\n", label)
	} else {
		fmt.Printf("%s %s missing\n", color.New(color.FgRed).Sprint("✗"), label)
	}
}
