package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaehokim/utilkit/objstore"
)

var (
	putJSON   bool
	putFile   string
	missingOK bool
)

var putCmd = &cobra.Command{
	Use:   "put [key] [value]",
	Short: "Write a value under a key",
	Long: `Writes a value to the store. The value comes from the argument, from
--file, or from stdin when neither is given. With --json the value is
parsed and stored as JSON.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPut,
}

var getCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Read a value, decoding JSON when it parses",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var catCmd = &cobra.Command{
	Use:   "cat [key]",
	Short: "Print the raw bytes stored under a key",
	Args:  cobra.ExactArgs(1),
	RunE:  runCat,
}

var rmCmd = &cobra.Command{
	Use:   "rm [key]",
	Short: "Delete the value stored under a key",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

var lsCmd = &cobra.Command{
	Use:   "ls [prefix]",
	Short: "List keys, optionally under a prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLs,
}

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "List top-level directories in the store",
	Args:  cobra.NoArgs,
	RunE:  runDirs,
}

func init() {
	putCmd.Flags().BoolVar(&putJSON, "json", false, "Parse the value as JSON before storing")
	putCmd.Flags().StringVar(&putFile, "file", "", "Read the value from a file instead of the argument")
	rmCmd.Flags().BoolVar(&missingOK, "missing-ok", false, "Do not fail when the key is absent")
}

func openStore() (*objstore.Store, error) {
	return objstore.Open(rootDir)
}

func runPut(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	key := args[0]

	var raw []byte
	switch {
	case putFile != "":
		raw, err = os.ReadFile(putFile)
		if err != nil {
			return err
		}
	case len(args) == 2:
		raw = []byte(args[1])
	default:
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	if putJSON {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("value is not valid JSON: %w", err)
		}
		return store.WriteJSON(key, v)
	}
	return store.WriteBytes(key, raw)
}

func runGet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	value, err := store.Read(args[0])
	if err != nil {
		return err
	}

	switch v := value.(type) {
	case string:
		fmt.Fprintln(cmd.OutOrStdout(), v)
	default:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return nil
}

func runCat(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	raw, err := store.ReadBytes(args[0])
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(raw)
	return err
}

func runRm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	if missingOK {
		return store.DeleteIfExists(args[0])
	}
	return store.Delete(args[0])
}

func runLs(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}
	keys, err := store.ListKeys(prefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		fmt.Fprintln(cmd.OutOrStdout(), key)
	}
	return nil
}

func runDirs(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	dirs, err := store.ListDirs()
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		fmt.Fprintln(cmd.OutOrStdout(), dir)
	}
	return nil
}
