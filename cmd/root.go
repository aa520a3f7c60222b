/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amirdaaee/TGSaver/internal/batch"
	"github.com/amirdaaee/TGSaver/internal/cleanup"
	"github.com/amirdaaee/TGSaver/internal/config"
	"github.com/amirdaaee/TGSaver/internal/db"
	"github.com/amirdaaee/TGSaver/internal/db/minio"
	"github.com/amirdaaee/TGSaver/internal/db/mongo"
	"github.com/amirdaaee/TGSaver/internal/db/redis"
	"github.com/amirdaaee/TGSaver/internal/events"
	"github.com/amirdaaee/TGSaver/internal/facade"
	"github.com/amirdaaee/TGSaver/internal/fetcher"
	"github.com/amirdaaee/TGSaver/internal/ffmpeg"
	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/amirdaaee/TGSaver/internal/notify"
	"github.com/amirdaaee/TGSaver/internal/router"
	"github.com/amirdaaee/TGSaver/internal/state"
	"github.com/amirdaaee/TGSaver/internal/tlg"
	"github.com/amirdaaee/TGSaver/internal/transfer"
	"github.com/amirdaaee/TGSaver/internal/types"
	realMinio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "TGSaver",
	Short: "Telegram batch media saver",
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

const stateBackendMinio = "minio"

func buildDbContainer(ctx context.Context) (db.IDbContainer, error) {
	cfg := config.Config()
	mongoContainer, err := mongo.NewMongoContainer(ctx, mongo.MongoContainerConfig{Endpoint: cfg.MongoDBConfig.Uri, DbName: cfg.MongoDBConfig.DBName}, true)
	if err != nil {
		return nil, fmt.Errorf("can not create mongo container: %w", err)
	}
	var minioContainer minio.IMinioContainer
	if cfg.RuntimeConfig.StateBackend == stateBackendMinio {
		minioContainer, err = minio.NewMinioContainer(ctx, minio.MinioContainerConfig{
			Endpoint: cfg.MinioConfig.Endpoint,
			Opts: &realMinio.Options{
				Creds:  credentials.NewStaticV4(cfg.MinioConfig.AccessKey, cfg.MinioConfig.SecretKey, ""),
				Secure: cfg.MinioConfig.Secure,
			},
			Bucket: cfg.MinioConfig.Bucket,
		}, true)
		if err != nil {
			return nil, fmt.Errorf("can not create minio container: %w", err)
		}
	}
	return db.NewDbContainer(mongoContainer, minioContainer), nil
}
func buildSessionConfig() *tlg.SessionConfig {
	cfg := config.Config()
	return &tlg.SessionConfig{
		SocksProxy:    cfg.TelegramConfig.TGSocksProxy,
		SessionDir:    cfg.TelegramConfig.SessionDir,
		AppID:         cfg.TelegramConfig.AppID,
		AppHash:       cfg.TelegramConfig.AppHash,
		SessionFormat: cfg.TelegramConfig.SessionFormat,
	}
}
func buildTgClient() tlg.IClient {
	return tlg.NewBotClient(buildSessionConfig(), config.Config().TelegramConfig.BotToken)
}
func buildProfileStore(dbContainer db.IDbContainer) facade.IProfileStore {
	users := facade.NewFacade(facade.NewUserCrud(dbContainer))
	return facade.NewProfileStore(users, dbContainer.GetMongoContainer().GetRawUserCollection())
}
func buildBanList(dbContainer db.IDbContainer) facade.IBanList {
	return facade.NewBanList(facade.NewFacade[types.BannedUserDoc](facade.NewBannedCrud(dbContainer)))
}

// buildQuotaGate counts free batches in redis when configured, in mongo otherwise.
func buildQuotaGate(ctx context.Context, dbContainer db.IDbContainer) (facade.IQuotaGate, func(), error) {
	cfg := config.Config()
	limits := facade.QuotaLimits{FreemiumLimit: cfg.LimitsConfig.FreemiumLimit, PremiumLimit: cfg.LimitsConfig.PremiumLimit}
	if cfg.RedisConfig.Uri == "" {
		return facade.NewQuotaGate(dbContainer.GetMongoContainer(), nil, limits), func() {}, nil
	}
	rdb, err := redis.Dial(ctx, cfg.RedisConfig.Uri)
	if err != nil {
		return nil, nil, err
	}
	return facade.NewQuotaGate(dbContainer.GetMongoContainer(), redis.NewQuotaCounter(rdb, cfg.RedisConfig.Prefix), limits), func() { _ = rdb.Close() }, nil
}
func buildStateStore(dbContainer db.IDbContainer) (*state.Store, error) {
	cfg := config.Config()
	if cfg.RuntimeConfig.StateBackend == stateBackendMinio {
		mc := dbContainer.GetMinioContainer()
		if mc == nil {
			return nil, fmt.Errorf("minio state backend is not configured")
		}
		return state.NewStore(state.NewMinioBackend(mc.GetMinioClient(), cfg.RuntimeConfig.StateFile)), nil
	}
	if err := os.MkdirAll(cfg.RuntimeConfig.WorkDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("can not create work dir: %w", err)
	}
	return state.NewStore(state.NewFileBackend(filepath.Join(cfg.RuntimeConfig.WorkDir, cfg.RuntimeConfig.StateFile))), nil
}

// buildPublisher falls back to logging events when no broker is configured.
func buildPublisher() (events.IPublisher, func(), error) {
	cfg := config.Config()
	if cfg.NatsConfig.Url == "" {
		return events.LogPublisher{}, func() {}, nil
	}
	conn, err := events.Dial(cfg.NatsConfig.Url)
	if err != nil {
		return nil, nil, err
	}
	return events.NewNatsPublisher(conn, cfg.NatsConfig.Subject), func() { _ = conn.Drain() }, nil
}
func buildRouter(profiles facade.IProfileStore) (router.IRouter, error) {
	cfg := config.Config()
	cipher, err := tlg.NewSessionCipher(cfg.SecurityConfig.MasterKey, cfg.SecurityConfig.IvKey)
	if err != nil {
		return nil, fmt.Errorf("can not build session cipher: %w", err)
	}
	sessCfg := buildSessionConfig()
	return router.NewRouter(profiles, cipher, func(cred tlg.Credential) (tlg.IMessenger, error) {
		return tlg.Dial(sessCfg, cred)
	}), nil
}

// buildRelay starts the session used for large uploads; nil when it is not configured.
func buildRelay() (tlg.IMessenger, error) {
	cfg := config.Config()
	if !cfg.RelayEnabled() {
		return nil, nil
	}
	relay, err := tlg.Dial(buildSessionConfig(), tlg.Credential{Session: cfg.TelegramConfig.RelaySession, Name: "relay"})
	if err != nil {
		return nil, fmt.Errorf("can not start relay session: %w", err)
	}
	return relay, nil
}
func buildEngine(profiles facade.IProfileStore, relay tlg.IMessenger) transfer.IEngine {
	cfg := config.Config()
	return transfer.NewEngine(profiles, transfer.NewProfileRenamer(profiles), ffmpeg.NewFFmpeg(nil), transfer.EngineOptions{
		WorkDir:  cfg.RuntimeConfig.WorkDir,
		Relay:    relay,
		LogGroup: cfg.TelegramConfig.LogGroup,
	})
}
func buildSweeper() *cleanup.Sweeper {
	cfg := config.Config()
	return cleanup.NewSweeper(cfg.RuntimeConfig.WorkDir, cfg.RuntimeConfig.CleanupMaxAge)
}
func buildNotifier(ui tlg.IMessenger) notify.INotifier {
	return notify.NewNotifier(ui, nil, notify.DefaultRate)
}

type services struct {
	orchestrator *batch.Orchestrator
	profiles     facade.IProfileStore
	bans         facade.IBanList
	notifier     notify.INotifier
	closers      []func()
}

// Close releases clients in reverse build order.
func (s *services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// buildServices assembles everything behind the orchestrator. ui is the main bot.
func buildServices(ctx context.Context, ui tlg.IMessenger) (*services, error) {
	cfg := config.Config()
	dbContainer, err := buildDbContainer(ctx)
	if err != nil {
		return nil, err
	}
	svc := &services{
		profiles: buildProfileStore(dbContainer),
		bans:     buildBanList(dbContainer),
		notifier: buildNotifier(ui),
		closers: []func(){func() {
			if err := dbContainer.Close(context.Background()); err != nil {
				logrus.WithError(err).Warn("can not close db")
			}
		}},
	}
	quota, closeQuota, err := buildQuotaGate(ctx, dbContainer)
	if err != nil {
		svc.Close()
		return nil, fmt.Errorf("can not build quota gate: %w", err)
	}
	svc.closers = append(svc.closers, closeQuota)
	store, err := buildStateStore(dbContainer)
	if err != nil {
		svc.Close()
		return nil, err
	}
	rtr, err := buildRouter(svc.profiles)
	if err != nil {
		svc.Close()
		return nil, err
	}
	svc.closers = append(svc.closers, rtr.Close)
	relay, err := buildRelay()
	if err != nil {
		svc.Close()
		return nil, err
	}
	if relay != nil {
		svc.closers = append(svc.closers, relay.Stop)
	}
	pub, closePub, err := buildPublisher()
	if err != nil {
		svc.Close()
		return nil, fmt.Errorf("can not connect to nats: %w", err)
	}
	svc.closers = append(svc.closers, closePub)
	svc.orchestrator = batch.NewOrchestrator(ctx, batch.Deps{
		UI:       ui,
		Router:   rtr,
		Fetcher:  fetcher.NewFetcher(),
		Engine:   buildEngine(svc.profiles, relay),
		Quota:    quota,
		Store:    store,
		Notifier: svc.notifier,
		Events:   pub,
		Sweeper:  buildSweeper(),
	}, batch.Options{
		FreemiumLimit:       cfg.LimitsConfig.FreemiumLimit,
		FreeBatchDailyLimit: cfg.LimitsConfig.FreeBatchDailyLimit,
	})
	return svc, nil
}

// recoverRuns resets whatever a previous process left in the state document.
func recoverRuns(ctx context.Context, orch batch.IOrchestrator) {
	ll := logrus.WithField("at", "recover")
	rep, err := orch.Recover(ctx)
	if err != nil {
		ll.WithError(err).Error("can not recover runs")
		return
	}
	if rep.Total > 0 {
		ll.Warnf("abandoned runs reset, users notified: %s", rep)
	}
}
func setupLogger() {
	cfg := config.Config()
	log.Setup(cfg.RuntimeConfig.LogLevel)
}
