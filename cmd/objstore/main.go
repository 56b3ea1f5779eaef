// Command objstore is a small CLI over a keyed file store directory.
//
// Usage:
//
//	objstore --root ./data put greeting "hello"
//	objstore --root ./data put config --json '{"debug": true}'
//	objstore --root ./data get greeting
//	objstore --root ./data ls reports/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootDir string

var rootCmd = &cobra.Command{
	Use:   "objstore",
	Short: "Keyed file store over a plain directory",
	Long: `objstore reads and writes values keyed by relative file paths under a
base directory. Text that parses as JSON is decoded on read; use cat for
raw bytes.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "./data", "Base directory of the store")

	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(dirsCmd)
}
