/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"

	"github.com/amirdaaee/TGSaver/internal/bot"
	"github.com/amirdaaee/TGSaver/internal/tlg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// resetCmd clears abandoned runs without serving updates
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset runs left by a stopped bot and notify their users",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger()
		ll := logrus.WithField("at", "reset")
		ctx := context.Background()
		myBot, err := bot.NewBot(buildTgClient())
		if err != nil {
			ll.WithError(err).Fatal("can not build bot")
		}
		defer myBot.Stop()
		svc, err := buildServices(ctx, tlg.NewMessenger(myBot.Client()))
		if err != nil {
			ll.WithError(err).Fatal("can not build services")
		}
		defer svc.Close()
		rep, err := svc.orchestrator.Recover(ctx)
		if err != nil {
			ll.WithError(err).Fatal("can not reset runs")
		}
		ll.Warnf("runs reset, users notified: %s", rep)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
