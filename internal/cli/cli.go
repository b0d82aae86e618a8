package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/olekukonko/tablewriter"
	"github.com/revcopy/adminctl/internal/api"
	"github.com/revcopy/adminctl/internal/auth"
	"github.com/revcopy/adminctl/internal/config"
	"github.com/spf13/cobra"
)

// App bundles the dependencies the commands operate on.
type App struct {
	Client *api.Client
	Store  *auth.Store
	Config config.Config
}

// Execute builds the command tree and runs it.
func Execute(ctx context.Context, app *App) error {
	root := newRootCmd(app)
	return root.ExecuteContext(ctx)
}

func newRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "adminctl",
		Short: "Admin console for the content-generation platform",
		Long: text(`
			adminctl talks to the platform's admin API. Log in once with
			"adminctl login"; the session tokens are stored encrypted and
			reused until they expire or you log out.
		`),
		SilenceUsage: true,
	}

	root.AddCommand(
		loginCmd(app),
		logoutCmd(app),
		meCmd(app),
		statusCmd(app),
		keepaliveCmd(app),
		templatesCmd(app),
		usersCmd(app),
		adminsCmd(app),
		paymentsCmd(app),
		amazonCmd(app),
		proxiesCmd(app),
		crawlersCmd(app),
		settingsCmd(app),
		analyticsCmd(app),
	)

	root.CompletionOptions.HiddenDefaultCmd = true

	return root
}

// text trims and dedents a long help string.
func text(s string) string {
	return strings.TrimSpace(dedent.Dedent(s))
}

// newTable returns a table writer with the house style applied.
func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetRowLine(false)
	return table
}

// listFlags registers the common pagination flags on a list command.
func listFlags(cmd *cobra.Command, opts *api.ListOptions) {
	cmd.Flags().IntVar(&opts.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Results per page")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Search filter")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func pageFooter(total, page, pages int) string {
	if pages > 1 {
		return fmt.Sprintf("%d total, page %d of %d", total, page, pages)
	}
	return fmt.Sprintf("%d total", total)
}
