package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JOstapjuk/class-clients/internal/api"
	"github.com/JOstapjuk/class-clients/internal/config"
	"github.com/JOstapjuk/class-clients/internal/logger"
	"github.com/JOstapjuk/class-clients/internal/parser"
	"github.com/JOstapjuk/class-clients/internal/query"
)

var (
	cfg  config.Config
	file string
	bank string
)

var rootCmd = &cobra.Command{
	Use:   "clients",
	Short: "Analytics over a bank clients records file",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
		if file == "" {
			file = cfg.File
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every client record in the file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(parser.ReadClients(file))
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print the clients of one bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(query.FilterByBank(parser.ReadClients(file), bank))
	},
}

var topEarnerCmd = &cobra.Command{
	Use:   "top-earner",
	Short: "Print the client who has earned the most money per day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(query.LargestEarningsPerDay(parser.ReadClients(file)))
	},
}

var topLoserCmd = &cobra.Command{
	Use:   "top-loser",
	Short: "Print the client who has lost the most money per day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(query.LargestLossPerDay(parser.ReadClients(file)))
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the queries over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Get().Info("listening", "addr", cfg.Addr, "file", file)
		return api.NewServer(file).Router().Run(cfg.Addr)
	},
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&file, "file", "", "path to the clients records file (default from CLIENTS_FILE)")
	filterCmd.Flags().StringVar(&bank, "bank", "", "bank name to filter by")
	_ = filterCmd.MarkFlagRequired("bank")
	rootCmd.AddCommand(listCmd, filterCmd, topEarnerCmd, topLoserCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
