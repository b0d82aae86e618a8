package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/revcopy/adminctl/internal/api"
	"github.com/spf13/cobra"
)

func templatesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage prompt templates",
	}

	cmd.AddCommand(
		templatesListCmd(app),
		templatesShowCmd(app),
		templatesCreateCmd(app),
		templatesUpdateCmd(app),
		templatesDeleteCmd(app),
	)

	return cmd
}

func templatesListCmd(app *App) *cobra.Command {
	var opts api.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prompt templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Client.ListPromptTemplates(cmd.Context(), opts)
			if err != nil {
				return err
			}

			table := newTable([]string{"ID", "Name", "Category", "Active", "Variables"})
			for _, tpl := range list.Items {
				table.Append([]string{
					strconv.FormatInt(tpl.ID, 10),
					tpl.Name,
					tpl.Category,
					yesNo(tpl.IsActive),
					strings.Join(tpl.Variables, ", "),
				})
			}
			table.Render()
			cmd.Println(pageFooter(list.Total, list.Page, list.Pages))
			return nil
		},
	}

	listFlags(cmd, &opts)
	return cmd
}

func templatesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a prompt template's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid template id: %s", args[0])
			}
			tpl, err := app.Client.GetPromptTemplate(cmd.Context(), id)
			if err != nil {
				return err
			}
			cmd.Printf("%s (%s)\n\n%s\n", tpl.Name, tpl.Category, tpl.Content)
			return nil
		},
	}
}

func templatesCreateCmd(app *App) *cobra.Command {
	var req api.PromptTemplateCreate

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a prompt template",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Name == "" || req.Content == "" {
				return fmt.Errorf("--name and --content are required")
			}
			tpl, err := app.Client.CreatePromptTemplate(cmd.Context(), req)
			if err != nil {
				return err
			}
			cmd.Printf("Created template %d (%s)\n", tpl.ID, tpl.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Template name")
	cmd.Flags().StringVar(&req.Category, "category", "", "Template category")
	cmd.Flags().StringVar(&req.Content, "content", "", "Template content")
	cmd.Flags().StringSliceVar(&req.Variables, "variables", nil, "Variable names used in the content")

	return cmd
}

func templatesUpdateCmd(app *App) *cobra.Command {
	var (
		name, category, content string
		active                  bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a prompt template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid template id: %s", args[0])
			}

			var req api.PromptTemplateUpdate
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("category") {
				req.Category = &category
			}
			if cmd.Flags().Changed("content") {
				req.Content = &content
			}
			if cmd.Flags().Changed("active") {
				req.IsActive = &active
			}

			tpl, err := app.Client.UpdatePromptTemplate(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			cmd.Printf("Updated template %d (%s)\n", tpl.ID, tpl.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Template name")
	cmd.Flags().StringVar(&category, "category", "", "Template category")
	cmd.Flags().StringVar(&content, "content", "", "Template content")
	cmd.Flags().BoolVar(&active, "active", true, "Whether the template is active")

	return cmd
}

func templatesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a prompt template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid template id: %s", args[0])
			}
			if err := app.Client.DeletePromptTemplate(cmd.Context(), id); err != nil {
				return err
			}
			cmd.Printf("Deleted template %d\n", id)
			return nil
		},
	}
}
