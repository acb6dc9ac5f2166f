// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command robdd exercises the robdd library on a few classical problems.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dalzilio/robdd"
)

// flags shared by all subcommands
var (
	configPath string
	nodesize   int
	cachesize  int
	stats      bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "robdd",
		Short: "robdd",
		Long:  `A CLI tool to solve problems with Binary Decision Diagrams.`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newQueensCmd(), newSetxorCmd())

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML file with the BDD configuration")
	rootCmd.PersistentFlags().IntVar(&nodesize, "nodes", 0, "initial size of the node table")
	rootCmd.PersistentFlags().IntVar(&cachesize, "cache", 0, "size of the operation caches")
	rootCmd.PersistentFlags().BoolVar(&stats, "stats", false, "print BDD statistics")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	if err := rootCmd.PersistentFlags().MarkHidden("debug"); err != nil {
		log.Panic(err.Error())
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newBDD returns a BDD with varnum variables, configured with the config file
// (if any) and the command line flags, that take precedence.
func newBDD(varnum int) (*robdd.BDD, error) {
	opts := []robdd.Option{robdd.Logger(log.StandardLogger().WithField("varnum", varnum))}
	if configPath != "" {
		c, err := robdd.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		copts, err := c.Options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, copts...)
	}
	if nodesize > 0 {
		opts = append(opts, robdd.Nodesize(nodesize))
	}
	if cachesize > 0 {
		opts = append(opts, robdd.Cachesize(cachesize))
	}
	return robdd.New(varnum, opts...)
}
