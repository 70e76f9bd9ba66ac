package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sweetcrumb/menu-system/pkg/client"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage menu items",
}

func init() {
	menuCmd.AddCommand(menuListCmd)
	menuCmd.AddCommand(menuCreateCmd)
	menuCmd.AddCommand(menuUpdateCmd)
	menuCmd.AddCommand(menuStockCmd)
	menuCmd.AddCommand(menuDeleteCmd)

	menuCreateCmd.Flags().String("name", "", "item name (required)")
	menuCreateCmd.Flags().String("description", "", "item description (required)")
	menuCreateCmd.Flags().String("price", "", "price (required)")
	menuCreateCmd.Flags().Int("stock", 0, "initial stock")
	menuCreateCmd.Flags().String("image", "", "path to the image file (required)")
	_ = menuCreateCmd.MarkFlagRequired("name")
	_ = menuCreateCmd.MarkFlagRequired("description")
	_ = menuCreateCmd.MarkFlagRequired("price")
	_ = menuCreateCmd.MarkFlagRequired("image")

	menuUpdateCmd.Flags().String("name", "", "new name")
	menuUpdateCmd.Flags().String("description", "", "new description")
	menuUpdateCmd.Flags().String("price", "", "new price")
	menuUpdateCmd.Flags().Int("stock", 0, "new stock")
	menuUpdateCmd.Flags().String("image", "", "path to a replacement image")

	menuDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
}

// availabilityLabel recomputes the display label from the stock count at
// render time, exactly as the web clients do.
func availabilityLabel(stock int) string {
	if stock > 0 {
		return "Available"
	}
	return "Sold Out"
}

// menuctl menu list — the public menu page.
var menuListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all menu items (public)",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := newClient().ListMenu(cmd.Context())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("The menu is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK\tAVAILABILITY")
		for _, item := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				item.ID, item.Name, item.Price, item.Stock, availabilityLabel(item.Stock))
		}
		return w.Flush()
	},
}

var menuCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a menu item with an image upload",
	RunE: func(cmd *cobra.Command, args []string) error {
		imagePath, _ := cmd.Flags().GetString("image")
		f, err := os.Open(imagePath)
		if err != nil {
			return err
		}
		defer f.Close()

		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		price, _ := cmd.Flags().GetString("price")
		stock, _ := cmd.Flags().GetInt("stock")

		item, err := newClient().CreateMenuItem(cmd.Context(), client.CreateMenuItemParams{
			Name:        name,
			Description: description,
			Price:       price,
			Stock:       stock,
			ImageName:   filepath.Base(imagePath),
			Image:       f,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created %s (%s) — %s\n", item.Name, item.ID, item.StockStatus)
		return nil
	},
}

var menuUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit fields of a menu item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var params client.UpdateMenuItemParams

		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			params.Name = &v
		}
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			params.Description = &v
		}
		if cmd.Flags().Changed("price") {
			v, _ := cmd.Flags().GetString("price")
			params.Price = &v
		}
		if cmd.Flags().Changed("stock") {
			v, _ := cmd.Flags().GetInt("stock")
			params.Stock = &v
		}
		if cmd.Flags().Changed("image") {
			imagePath, _ := cmd.Flags().GetString("image")
			f, err := os.Open(imagePath)
			if err != nil {
				return err
			}
			defer f.Close()
			params.ImageName = filepath.Base(imagePath)
			params.Image = f
		}

		item, err := newClient().UpdateMenuItem(cmd.Context(), args[0], params)
		if err != nil {
			return err
		}

		fmt.Printf("Updated %s (%s) — stock %d, %s\n", item.Name, item.ID, item.Stock, item.StockStatus)
		return nil
	},
}

var menuStockCmd = &cobra.Command{
	Use:   "stock <id> <count>",
	Short: "Set the stock count of a menu item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var stock int
		if _, err := fmt.Sscanf(args[1], "%d", &stock); err != nil {
			return fmt.Errorf("invalid stock count %q", args[1])
		}

		item, err := newClient().UpdateStock(cmd.Context(), args[0], stock)
		if err != nil {
			return err
		}

		fmt.Printf("%s: stock %d — %s\n", item.Name, item.Stock, item.StockStatus)
		return nil
	},
}

var menuDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a menu item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Printf("Delete menu item %s? This cannot be undone. [y/N] ", args[0])
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		item, err := newClient().DeleteMenuItem(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Deleted %s (%s)\n", item.Name, item.ID)
		return nil
	},
}
