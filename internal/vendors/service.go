package vendors

import (
	"context"
	"errors"
	"fmt"
	"time"

	cloudbigquery "cloud.google.com/go/bigquery"
	pkgerrors "github.com/fleekhq/seller-finance-backend/pkg/errors"
	"github.com/fleekhq/seller-finance-backend/pkg/logger"
	"github.com/fleekhq/seller-finance-backend/pkg/redis"
	"github.com/fleekhq/seller-finance-backend/pkg/warehouse"
	"google.golang.org/api/iterator"
)

// The handle match is exact and case-sensitive. ORDER BY id makes the winner
// deterministic when the replicated feed transiently holds duplicates.
const resolveSQL = `
SELECT CAST(id AS STRING) AS id
FROM %s
WHERE handle = @handle
  AND _fivetran_deleted = FALSE
ORDER BY id
LIMIT 1
`

// Service resolves vendor handles to vendor identifiers.
type Service interface {
	Resolve(ctx context.Context, handle string) (string, error)
}

// Cache is the optional read-through cache for resolution results. A handle
// maps to the same id for the lifetime of a session, so cached entries only
// need a coarse TTL.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type service struct {
	client   warehouse.Querier
	cache    Cache
	cacheTTL time.Duration
	table    string
	logg     *logger.Logger
}

// NewService builds a warehouse-backed resolver. cache may be nil.
func NewService(client warehouse.Querier, table string, cache Cache, cacheTTL time.Duration, logg *logger.Logger) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("warehouse client required")
	}
	if table == "" {
		return nil, fmt.Errorf("vendors table required")
	}
	return &service{
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
		table:    table,
		logg:     logg,
	}, nil
}

func (s *service) Resolve(ctx context.Context, handle string) (string, error) {
	if handle == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "vendor handle is required")
	}

	if s.cache != nil {
		if id, err := s.cache.Get(ctx, redis.VendorKey(handle)); err == nil {
			return id, nil
		} else if !errors.Is(err, redis.ErrCacheMiss) && s.logg != nil {
			s.logg.Warn(ctx, "vendor cache read failed, falling back to warehouse")
		}
	}

	sql := fmt.Sprintf(resolveSQL, s.client.TableRef(s.table))
	iter, err := s.client.Query(ctx, sql, []cloudbigquery.QueryParameter{
		{Name: "handle", Value: handle},
	})
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolving vendor handle")
	}

	var row struct {
		ID string `bigquery:"id"`
	}
	if err := iter.Next(&row); err != nil {
		if err == iterator.Done {
			return "", pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("vendor not found: %s", handle))
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading vendor row")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, redis.VendorKey(handle), row.ID, s.cacheTTL); err != nil && s.logg != nil {
			s.logg.Warn(ctx, "vendor cache write failed")
		}
	}

	return row.ID, nil
}
