package cli

import (
	"fmt"
	"strconv"

	"github.com/revcopy/adminctl/internal/api"
	"github.com/spf13/cobra"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %s", arg)
	}
	return id, nil
}

func usersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage customer accounts",
	}

	var listOpts api.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Client.ListUsers(cmd.Context(), listOpts)
			if err != nil {
				return err
			}
			table := newTable([]string{"ID", "Email", "Name", "Plan", "Active"})
			for _, u := range result.Items {
				table.Append([]string{
					strconv.FormatInt(u.ID, 10), u.Email, u.FullName, u.Plan, yesNo(u.IsActive),
				})
			}
			table.Render()
			cmd.Println(pageFooter(result.Total, result.Page, result.Pages))
			return nil
		},
	}
	listFlags(list, &listOpts)

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := app.Client.GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			cmd.Printf("%s <%s>\nplan: %s, active: %s, created: %s\n",
				u.FullName, u.Email, u.Plan, yesNo(u.IsActive), u.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}

	var suspend, activate bool
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var req api.UserUpdate
			if suspend {
				inactive := false
				req.IsActive = &inactive
			}
			if activate {
				active := true
				req.IsActive = &active
			}
			u, err := app.Client.UpdateUser(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			cmd.Printf("Updated user %d, active: %s\n", u.ID, yesNo(u.IsActive))
			return nil
		},
	}
	update.Flags().BoolVar(&suspend, "suspend", false, "Deactivate the account")
	update.Flags().BoolVar(&activate, "activate", false, "Reactivate the account")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Client.DeleteUser(cmd.Context(), id); err != nil {
				return err
			}
			cmd.Printf("Deleted user %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, show, update, del)
	return cmd
}

func adminsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admins",
		Short: "Manage administrator accounts",
	}

	var listOpts api.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List admins",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Client.ListAdmins(cmd.Context(), listOpts)
			if err != nil {
				return err
			}
			table := newTable([]string{"ID", "Email", "Name", "Role", "Active"})
			for _, a := range result.Items {
				table.Append([]string{
					strconv.FormatInt(a.ID, 10), a.Email, a.FullName, a.Role, yesNo(a.IsActive),
				})
			}
			table.Render()
			cmd.Println(pageFooter(result.Total, result.Page, result.Pages))
			return nil
		},
	}
	listFlags(list, &listOpts)

	var req api.AdminCreate
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Email == "" {
				return fmt.Errorf("--email is required")
			}
			if req.Password == "" {
				req.Password = promptForPassword("Password for new admin: ")
			}
			a, err := app.Client.CreateAdmin(cmd.Context(), req)
			if err != nil {
				return err
			}
			cmd.Printf("Created admin %d <%s>\n", a.ID, a.Email)
			return nil
		},
	}
	create.Flags().StringVar(&req.Email, "email", "", "Admin email")
	create.Flags().StringVar(&req.FullName, "name", "", "Full name")
	create.Flags().StringVar(&req.Password, "password", "", "Password (prompted if omitted)")
	create.Flags().StringVar(&req.Role, "role", "admin", "Role")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an admin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Client.DeleteAdmin(cmd.Context(), id); err != nil {
				return err
			}
			cmd.Printf("Deleted admin %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, create, del)
	return cmd
}

func paymentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Inspect payments",
	}

	var listOpts api.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Client.ListPayments(cmd.Context(), listOpts)
			if err != nil {
				return err
			}
			table := newTable([]string{"ID", "User", "Amount", "Status", "Provider", "Date"})
			for _, p := range result.Items {
				table.Append([]string{
					strconv.FormatInt(p.ID, 10),
					strconv.FormatInt(p.UserID, 10),
					fmt.Sprintf("%.2f %s", p.Amount, p.Currency),
					p.Status,
					p.Provider,
					p.CreatedAt.Format("2006-01-02"),
				})
			}
			table.Render()
			cmd.Println(pageFooter(result.Total, result.Page, result.Pages))
			return nil
		},
	}
	listFlags(list, &listOpts)

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := app.Client.GetPayment(cmd.Context(), id)
			if err != nil {
				return err
			}
			cmd.Printf("payment %d: %.2f %s via %s, status %s\n", p.ID, p.Amount, p.Currency, p.Provider, p.Status)
			return nil
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func amazonCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amazon",
		Short: "Manage Amazon crawl accounts",
	}

	var listOpts api.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List Amazon accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Client.ListAmazonAccounts(cmd.Context(), listOpts)
			if err != nil {
				return err
			}
			table := newTable([]string{"ID", "Email", "Country", "Status"})
			for _, a := range result.Items {
				table.Append([]string{strconv.FormatInt(a.ID, 10), a.Email, a.Country, a.Status})
			}
			table.Render()
			cmd.Println(pageFooter(result.Total, result.Page, result.Pages))
			return nil
		},
	}
	listFlags(list, &listOpts)

	var req api.AmazonAccountCreate
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an Amazon account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Email == "" {
				return fmt.Errorf("--email is required")
			}
			if req.Password == "" {
				req.Password = promptForPassword("Amazon account password: ")
			}
			a, err := app.Client.CreateAmazonAccount(cmd.Context(), req)
			if err != nil {
				return err
			}
			cmd.Printf("Added account %d <%s>\n", a.ID, a.Email)
			return nil
		},
	}
	add.Flags().StringVar(&req.Email, "email", "", "Account email")
	add.Flags().StringVar(&req.Password, "password", "", "Account password (prompted if omitted)")
	add.Flags().StringVar(&req.Country, "country", "us", "Marketplace country code")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an Amazon account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Client.DeleteAmazonAccount(cmd.Context(), id); err != nil {
				return err
			}
			cmd.Printf("Removed account %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func proxiesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proxies",
		Short: "Manage proxy servers",
	}

	var listOpts api.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List proxy servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Client.ListProxyServers(cmd.Context(), listOpts)
			if err != nil {
				return err
			}
			table := newTable([]string{"ID", "Host", "Port", "Protocol", "Active"})
			for _, p := range result.Items {
				table.Append([]string{
					strconv.FormatInt(p.ID, 10), p.Host, strconv.Itoa(p.Port), p.Protocol, yesNo(p.IsActive),
				})
			}
			table.Render()
			cmd.Println(pageFooter(result.Total, result.Page, result.Pages))
			return nil
		},
	}
	listFlags(list, &listOpts)

	var req api.ProxyServerCreate
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a proxy server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Host == "" || req.Port == 0 {
				return fmt.Errorf("--host and --port are required")
			}
			p, err := app.Client.CreateProxyServer(cmd.Context(), req)
			if err != nil {
				return err
			}
			cmd.Printf("Added proxy %d (%s:%d)\n", p.ID, p.Host, p.Port)
			return nil
		},
	}
	add.Flags().StringVar(&req.Host, "host", "", "Proxy host")
	add.Flags().IntVar(&req.Port, "port", 0, "Proxy port")
	add.Flags().StringVar(&req.Protocol, "protocol", "http", "Proxy protocol")
	add.Flags().StringVar(&req.Username, "username", "", "Proxy username")
	add.Flags().StringVar(&req.Password, "password", "", "Proxy password")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a proxy server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Client.DeleteProxyServer(cmd.Context(), id); err != nil {
				return err
			}
			cmd.Printf("Removed proxy %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func crawlersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawlers",
		Short: "Inspect and trigger review crawlers",
	}

	var listOpts api.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List crawlers",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Client.ListCrawlers(cmd.Context(), listOpts)
			if err != nil {
				return err
			}
			table := newTable([]string{"ID", "Name", "Platform", "Status"})
			for _, c := range result.Items {
				table.Append([]string{strconv.FormatInt(c.ID, 10), c.Name, c.Platform, c.Status})
			}
			table.Render()
			cmd.Println(pageFooter(result.Total, result.Page, result.Pages))
			return nil
		},
	}
	listFlags(list, &listOpts)

	run := &cobra.Command{
		Use:   "run <id>",
		Short: "Trigger a crawl run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			r, err := app.Client.TriggerCrawler(cmd.Context(), id)
			if err != nil {
				return err
			}
			cmd.Printf("Started run %d for crawler %d, status %s\n", r.ID, r.CrawlerID, r.Status)
			return nil
		},
	}

	cmd.AddCommand(list, run)
	return cmd
}
