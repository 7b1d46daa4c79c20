package cmd

import (
	"fmt"
	"os"

	"github.com/chrisdamba/restobill/internal/models"
	"github.com/chrisdamba/restobill/internal/pos"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "restobill",
	Short: "Interactive restaurant billing terminal",
	Long:  `restobill is an interactive terminal tool for billing restaurant orders: it keeps an in-memory menu catalog, assembles orders item by item, computes tax-inclusive totals and prints and saves a receipt for each order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		terminal := pos.NewTerminal(cfg, os.Stdin, os.Stdout)
		return terminal.Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./restobill.yaml)")

	rootCmd.Flags().Float64("tax-rate", 5.0, "GST percent applied on the subtotal")
	rootCmd.Flags().String("currency", "Rs", "Currency label shown on menus and receipts")
	rootCmd.Flags().String("receipt-dir", ".", "Directory receipts are saved to")
	rootCmd.Flags().String("restaurant-name", "Simple Restaurant", "Name printed on receipt headers")

	viper.BindPFlag("tax_rate", rootCmd.Flags().Lookup("tax-rate"))
	viper.BindPFlag("currency", rootCmd.Flags().Lookup("currency"))
	viper.BindPFlag("receipt_folder", rootCmd.Flags().Lookup("receipt-dir"))
	viper.BindPFlag("restaurant_name", rootCmd.Flags().Lookup("restaurant-name"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
