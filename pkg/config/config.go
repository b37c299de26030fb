package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the service reads.
	EnvPrefix = "SELLERFIN"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App       AppConfig
	GCP       GCPConfig
	Warehouse WarehouseConfig
	Redis     RedisConfig
	Portal    PortalConfig
	HTTP      HTTPConfig
}

// Load reads configuration from the environment. A missing required value is
// fatal at startup, never per-request.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if !c.Portal.UseSampleData && strings.TrimSpace(c.GCP.ProjectID) == "" {
		return fmt.Errorf("%s_GCP_PROJECT_ID is required unless sample data is enabled", EnvPrefix)
	}
	return nil
}

type AppConfig struct {
	Env          string `envconfig:"SELLERFIN_APP_ENV" default:"dev"`
	Port         string `envconfig:"SELLERFIN_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SELLERFIN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SELLERFIN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type GCPConfig struct {
	ProjectID              string `envconfig:"SELLERFIN_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"SELLERFIN_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"SELLERFIN_GOOGLE_APPLICATION_CREDENTIALS"`
}

// WarehouseConfig points at the replicated ledger tables. The ledger feed and
// the denormalized analytics view live in separate datasets.
type WarehouseConfig struct {
	LedgerDataset           string        `envconfig:"SELLERFIN_WAREHOUSE_LEDGER_DATASET" default:"aurora_postgres_public"`
	AnalyticsDataset        string        `envconfig:"SELLERFIN_WAREHOUSE_ANALYTICS_DATASET" default:"fleek_analytics"`
	VendorsTable            string        `envconfig:"SELLERFIN_WAREHOUSE_VENDORS_TABLE" default:"vendors"`
	BalanceTransactionTable string        `envconfig:"SELLERFIN_WAREHOUSE_BALANCE_TRANSACTION_TABLE" default:"balance_transaction"`
	PayoutTable             string        `envconfig:"SELLERFIN_WAREHOUSE_PAYOUT_TABLE" default:"payout"`
	VendorPayoutTable       string        `envconfig:"SELLERFIN_WAREHOUSE_VENDOR_PAYOUT_TABLE" default:"vendor_payout"`
	RetryAttempts           int           `envconfig:"SELLERFIN_WAREHOUSE_RETRY_ATTEMPTS" default:"3"`
	RetryBaseDelay          time.Duration `envconfig:"SELLERFIN_WAREHOUSE_RETRY_BASE_DELAY" default:"250ms"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SELLERFIN_REDIS_URL"`
	DialTimeout  time.Duration `envconfig:"SELLERFIN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SELLERFIN_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SELLERFIN_REDIS_WRITE_TIMEOUT" default:"5s"`
	VendorIDTTL  time.Duration `envconfig:"SELLERFIN_REDIS_VENDOR_ID_TTL" default:"12h"`
}

// Enabled reports whether a resolution cache was configured. Redis is
// optional: the portal works without it, just with one extra warehouse
// round-trip per session.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type PortalConfig struct {
	UseSampleData        bool          `envconfig:"SELLERFIN_USE_SAMPLE_DATA" default:"false"`
	DefaultVendorHandle  string        `envconfig:"SELLERFIN_DEFAULT_VENDOR_HANDLE" default:"vibe-vintage"`
	PollInterval         time.Duration `envconfig:"SELLERFIN_POLL_INTERVAL" default:"30s"`
	PayoutWeekday        int           `envconfig:"SELLERFIN_PAYOUT_WEEKDAY" default:"1"`
	PayoutHistoryDefault int           `envconfig:"SELLERFIN_PAYOUT_HISTORY_DEFAULT" default:"5"`
	PayoutHistoryMax     int           `envconfig:"SELLERFIN_PAYOUT_HISTORY_MAX" default:"10"`
}

type HTTPConfig struct {
	RequestTimeout time.Duration `envconfig:"SELLERFIN_HTTP_REQUEST_TIMEOUT" default:"30s"`
}
