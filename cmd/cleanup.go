/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove stale downloads and thumbnails from the work dir",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger()
		ll := logrus.WithField("at", "cleanup")
		n, err := buildSweeper().Sweep()
		if err != nil {
			ll.WithError(err).Fatal("sweep failed")
		}
		ll.Warnf("%d stale files removed", n)
	},
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}
