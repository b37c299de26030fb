package warehouse

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/fleekhq/seller-finance-backend/pkg/config"
	"github.com/fleekhq/seller-finance-backend/pkg/logger"
	"github.com/sethvargo/go-retry"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	metadataCheckTimeout = 10 * time.Second
	logQueryMaxLen       = 200
)

// Client executes read-only analytical queries against the warehouse. It
// never issues writes; every statement is a SELECT built from a template with
// bound parameters.
type Client struct {
	client    *bigquery.Client
	projectID string
	cfg       config.WarehouseConfig
	logg      *logger.Logger
}

var (
	errProjectIDRequired    = errors.New("gcp project id is required")
	errClientNotInitialized = errors.New("warehouse client not initialized")
	errSQLRequired          = errors.New("sql query is required")
)

type Pinger interface {
	Ping(context.Context) error
}

// Rows iterates one result set. Next fills dst from the current row and
// returns iterator.Done after the last one.
type Rows interface {
	Next(dst any) error
}

// Querier is the read surface the domain services depend on. *Client is the
// warehouse-backed implementation; tests substitute canned rows.
type Querier interface {
	TableRef(table string) string
	AnalyticsTableRef(table string) string
	Query(ctx context.Context, sql string, params []bigquery.QueryParameter) (Rows, error)
}

var _ Querier = (*Client)(nil)

// NewClient creates a BigQuery-backed client and verifies the configured
// datasets and tables are reachable.
func NewClient(ctx context.Context, gcp config.GCPConfig, cfg config.WarehouseConfig, logg *logger.Logger) (*Client, error) {
	projectID := strings.TrimSpace(gcp.ProjectID)
	if projectID == "" {
		return nil, errProjectIDRequired
	}

	opts := clientOptions(gcp)
	bqClient, err := bigquery.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating bigquery client: %w", err)
	}

	client := &Client{
		client:    bqClient,
		projectID: projectID,
		cfg:       cfg,
		logg:      logg,
	}

	if err := client.ensureTables(ctx); err != nil {
		_ = bqClient.Close()
		return nil, err
	}

	if logg != nil {
		logg.Info(ctx, "warehouse client initialized")
	}

	return client, nil
}

func clientOptions(gcp config.GCPConfig) []option.ClientOption {
	var opts []option.ClientOption
	switch {
	case strings.TrimSpace(gcp.CredentialsJSON) != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(gcp.CredentialsJSON)))
	case strings.TrimSpace(gcp.ApplicationCredentials) != "":
		opts = append(opts, option.WithCredentialsFile(gcp.ApplicationCredentials))
	}
	return opts
}

// TableRef returns the fully qualified, backtick-quoted reference for a table
// in the ledger dataset.
func (c *Client) TableRef(table string) string {
	return fmt.Sprintf("`%s.%s.%s`", c.projectID, c.cfg.LedgerDataset, table)
}

// AnalyticsTableRef returns the fully qualified reference for a table in the
// denormalized analytics dataset.
func (c *Client) AnalyticsTableRef(table string) string {
	return fmt.Sprintf("`%s.%s.%s`", c.projectID, c.cfg.AnalyticsDataset, table)
}

func (c *Client) datasetTables() map[string][]string {
	return map[string][]string{
		c.cfg.LedgerDataset: {
			c.cfg.VendorsTable,
			c.cfg.BalanceTransactionTable,
			c.cfg.PayoutTable,
		},
		c.cfg.AnalyticsDataset: {
			c.cfg.VendorPayoutTable,
		},
	}
}

func (c *Client) ensureTables(ctx context.Context) error {
	if c == nil || c.client == nil {
		return errClientNotInitialized
	}

	ctx, cancel := context.WithTimeout(ctx, metadataCheckTimeout)
	defer cancel()

	for datasetID, tables := range c.datasetTables() {
		dataset := c.client.Dataset(datasetID)
		if _, err := dataset.Metadata(ctx); err != nil {
			if isNotFound(err) {
				return fmt.Errorf("dataset %q does not exist", datasetID)
			}
			return fmt.Errorf("checking dataset %q: %w", datasetID, err)
		}
		for _, name := range tables {
			if _, err := dataset.Table(name).Metadata(ctx); err != nil {
				if isNotFound(err) {
					return fmt.Errorf("table %q does not exist in dataset %q", name, datasetID)
				}
				return fmt.Errorf("checking table %q: %w", name, err)
			}
		}
	}

	return nil
}

// Ping verifies the datasets and tables are accessible.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return errClientNotInitialized
	}
	return c.ensureTables(ctx)
}

// Query executes a parameterized SELECT and returns the row iterator.
// Transient warehouse failures are retried with capped exponential backoff;
// everything else propagates immediately to the caller.
func (c *Client) Query(ctx context.Context, sql string, params []bigquery.QueryParameter) (Rows, error) {
	if c == nil || c.client == nil {
		return nil, errClientNotInitialized
	}
	if strings.TrimSpace(sql) == "" {
		return nil, errSQLRequired
	}

	if c.logg != nil {
		logCtx := c.logg.WithField(ctx, "query", truncate(sql, logQueryMaxLen))
		c.logg.Info(logCtx, "warehouse.query")
	}

	var iter *bigquery.RowIterator
	backoff := retry.WithMaxRetries(uint64(c.maxRetries()), retry.NewExponential(c.baseDelay()))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		q := c.client.Query(sql)
		q.Parameters = params
		it, err := q.Read(ctx)
		if err != nil {
			if isTransient(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		iter = it
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("executing warehouse query: %w", err)
	}
	return iter, nil
}

// Close releases the underlying BigQuery client.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Client) maxRetries() int {
	if c.cfg.RetryAttempts <= 0 {
		return 0
	}
	return c.cfg.RetryAttempts
}

func (c *Client) baseDelay() time.Duration {
	if c.cfg.RetryBaseDelay <= 0 {
		return 250 * time.Millisecond
	}
	return c.cfg.RetryBaseDelay
}

func truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr != nil {
		return apiErr.Code == http.StatusNotFound
	}
	return false
}

func isTransient(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) || apiErr == nil {
		return false
	}
	switch apiErr.Code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
