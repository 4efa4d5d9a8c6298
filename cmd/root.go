package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "payments-engine",
	Short: "Computes final client account balances from a transaction stream",
	Long: `payments-engine processes an ordered CSV stream of transactions
(deposits, withdrawals, disputes, resolves and chargebacks), enforcing the
dispute lifecycle and account freezing rules, and prints the final balance
of every referenced client account.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(processCmd)
}
