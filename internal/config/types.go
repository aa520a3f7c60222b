package config

import "time"

type TelegramConfigType struct {
	AppID        int    `env:"APP_ID,required"`
	AppHash      string `env:"APP_HASH,required"`
	BotToken     string `env:"BOT_TOKEN,required"`
	TGSocksProxy string `env:"TG_SOCKS_PROXY"`
	SessionDir   string `env:"SESSION_DIR" envDefault:"sessions"`
	// relay session used for uploads above the bot ceiling
	RelaySession  string `env:"STRING"`
	LogGroup      int64  `env:"LOG_GROUP"`
	SessionFormat string `env:"SESSION_FORMAT" envDefault:"pyrogram"`
}
type MongoDBConfigType struct {
	Uri    string `env:"MONGODB_URI,required"`
	DBName string `env:"MONGODB_DB_NAME" envDefault:"telegram_downloader"`
}
type MinioConfigType struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET" envDefault:"tgsaver"`
	Secure    bool   `env:"SECURE" envDefault:"true"`
}
type RedisConfigType struct {
	Uri    string `env:"URI"`
	Prefix string `env:"PREFIX" envDefault:"tgsaver"`
}
type NatsConfigType struct {
	Url     string `env:"URL"`
	Subject string `env:"SUBJECT" envDefault:"tgsaver.batch"`
}
type SecurityConfigType struct {
	MasterKey string `env:"MASTER_KEY,required"`
	IvKey     string `env:"IV_KEY,required"`
}
type LimitsConfigType struct {
	FreemiumLimit       int `env:"FREEMIUM_LIMIT" envDefault:"69"`
	PremiumLimit        int `env:"PREMIUM_LIMIT" envDefault:"500000"`
	FreeBatchDailyLimit int `env:"FREE_BATCH_DAILY_LIMIT" envDefault:"5"`
}
type RuntimeConfigType struct {
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"warning"`
	OwnerIDs        []int64       `env:"OWNER_ID" envSeparator:" "`
	WorkDir         string        `env:"WORK_DIR" envDefault:"."`
	StateBackend    string        `env:"STATE_BACKEND" envDefault:"file"`
	StateFile       string        `env:"STATE_FILE" envDefault:"active_users.json"`
	CleanupSchedule string        `env:"CLEANUP_SCHEDULE" envDefault:"@hourly"`
	CleanupMaxAge   time.Duration `env:"CLEANUP_MAX_AGE" envDefault:"24h"`
	AdminContact    string        `env:"ADMIN_CONTACT"`
}
type HttpConfigType struct {
	Enabled      bool     `env:"ENABLED" envDefault:"false"`
	ApiToken     string   `env:"API_TOKEN"`
	CoresAllowed []string `env:"CORES_ALLOWED_ORIGINS"`
	ListenAddr   string   `env:"LISTEN_ADDR" envDefault:":8080"`
}
type ConfigType struct {
	TelegramConfig TelegramConfigType
	MongoDBConfig  MongoDBConfigType
	MinioConfig    MinioConfigType `envPrefix:"MINIO_CONFIG__"`
	RedisConfig    RedisConfigType `envPrefix:"REDIS_"`
	NatsConfig     NatsConfigType  `envPrefix:"NATS_"`
	SecurityConfig SecurityConfigType
	LimitsConfig   LimitsConfigType
	RuntimeConfig  RuntimeConfigType
	HttpConfig     HttpConfigType `envPrefix:"HTTP_CONFIG__"`
}
