package log

import (
	"github.com/sirupsen/logrus"
)

type LogModule string

const (
	DBModule       LogModule = "db"
	FacadeModule   LogModule = "facade"
	TlgModule      LogModule = "tlg"
	BotModule      LogModule = "bot"
	BatchModule    LogModule = "batch"
	TransferModule LogModule = "transfer"
	RouterModule   LogModule = "router"
	FetcherModule  LogModule = "fetcher"
	StateModule    LogModule = "state"
	NotifyModule   LogModule = "notify"
	EventsModule   LogModule = "events"
	CleanupModule  LogModule = "cleanup"
	WebModule      LogModule = "web"
)

func GetLogger(module LogModule) *logrus.Entry {
	return logrus.WithField("module", module)
}

func Setup(level string) {
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse log level %s. using default ...", level)
		return
	}
	logrus.Infof("setting log level to %s", ll)
	logrus.SetLevel(ll)
}
