/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirdaaee/TGSaver/internal/bot"
	"github.com/amirdaaee/TGSaver/internal/cleanup"
	"github.com/amirdaaee/TGSaver/internal/config"
	"github.com/amirdaaee/TGSaver/internal/tlg"
	"github.com/amirdaaee/TGSaver/internal/web"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// botCmd represents the bot command
var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Start TGSaver bot",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger()
		ll := logrus.WithField("at", "bot")
		ll.Info("starting bot")
		cfg := config.Config()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		// ...
		myBot, err := bot.NewBot(buildTgClient())
		if err != nil {
			ll.WithError(err).Fatal("can not build bot")
		}
		ui := tlg.NewMessenger(myBot.Client())
		ll.Info("bot built")
		// ...
		svc, err := buildServices(ctx, ui)
		if err != nil {
			ll.WithError(err).Fatal("can not build services")
		}
		defer svc.Close()
		ll.Info("services built")
		recoverRuns(ctx, svc.orchestrator)
		// ...
		sweeps, err := cleanup.Schedule(cfg.RuntimeConfig.CleanupSchedule, buildSweeper())
		if err != nil {
			ll.WithError(err).Fatal("can not schedule cleanup")
		}
		sweeps.Start()
		defer sweeps.Stop()
		// ...
		hndler := bot.NewHandler(bot.HandlerDeps{
			Orchestrator: svc.orchestrator,
			Bans:         svc.bans,
			Profiles:     svc.profiles,
			Notifier:     svc.notifier,
			UI:           ui,
		}, bot.HandlerOptions{
			OwnerIDs:     cfg.RuntimeConfig.OwnerIDs,
			LogGroup:     cfg.TelegramConfig.LogGroup,
			AdminContact: cfg.RuntimeConfig.AdminContact,
		})
		hndler.Register(myBot)
		ll.Info("handler registered")
		// ...
		g, gCtx := errgroup.WithContext(ctx)
		g.Go(myBot.Start)
		if cfg.HttpConfig.Enabled {
			srv := web.NewServer(web.ServerConfig{
				ListenAddr:     cfg.HttpConfig.ListenAddr,
				ApiToken:       cfg.HttpConfig.ApiToken,
				AllowedOrigins: cfg.HttpConfig.CoresAllowed,
			}, svc.orchestrator)
			g.Go(func() error { return srv.Run(gCtx) })
		}
		g.Go(func() error {
			<-gCtx.Done()
			ll.Warn("shutting down")
			myBot.Stop()
			return nil
		})
		ll.Warn("starting listening for messages")
		if err := g.Wait(); err != nil {
			ll.WithError(err).Error("bot stopped")
		}
		svc.orchestrator.Wait()
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
}
