package validators

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/fleekhq/seller-finance-backend/pkg/errors"
)

// ParseQueryInt reads an optional integer query parameter; the seller
// endpoints use it for limit, offset and the payout history depth. A missing
// or blank value yields the default, anything unparsable or out of range is a
// validation error naming the parameter.
func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be a whole number", key)).
			WithDetails(map[string]any{key: raw})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be between %d and %d", key, min, max)).
			WithDetails(map[string]any{key: raw})
	}
	return value, nil
}
