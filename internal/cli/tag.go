package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/natvega/tasktique/internal/theme"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage local tags",
	Long:  `Tags live only on this machine. Deleting a tag also removes it from every task.`,
}

var tagColor string

func init() {
	tagAddCmd.Flags().StringVar(&tagColor, "color", "#9b87f5", "Display color (hex)")
	tagCmd.AddCommand(tagListCmd, tagAddCmd, tagRmCmd)
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCOLOR")
		for _, tag := range app.tags.Tags() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", tag.ID, tag.Name, tag.Color)
		}
		return w.Flush()
	},
}

var tagAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		tag, err := app.tags.AddTag(args[0], tagColor)
		if err != nil {
			return err
		}
		fmt.Printf("  %s (%s)\n", tag.Name, tag.ID)
		return nil
	},
}

var tagRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a tag and remove it from every task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		return app.tags.DeleteTag(args[0])
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|system]",
	Short: "Show or set the appearance preference",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Println(theme.Load(app.kv))
			return nil
		}

		th, err := theme.Parse(args[0])
		if err != nil {
			return err
		}
		return theme.Save(app.kv, th)
	},
}
