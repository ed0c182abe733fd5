package model

import (
	"math"
	"strconv"
	"strings"
	"time"

	"yourfuture/internal/serrors"
)

// Currencies accepted in Startup.FundsRaised.
var AllowedCurrencies = []string{"ETH", "BTC", "USDT"} //nolint: gochecknoglobals

// Startup is a company profile submitted for moderation
type Startup struct {
	ID            int64
	Name          string
	Description   string
	FundsRaised   map[string]float64
	OpenseaLink   *string
	Moderation
	CreatorUserID int64
	CurrentStage  Stage
	StageTimeline StageTimeline
	IsHeld        bool
	CreatedAt     time.Time
}

// Available reports whether vacancies under s may be created, approved or
// applied to.
func (s *Startup) Available() bool {
	return s != nil && s.Status == StatusApproved && !s.IsHeld
}

// StartupWithCreator is a startup joined with its creator's contact fields.
type StartupWithCreator struct {
	Startup
	Creator *UserContact
}

// CreateStartupRequest is the payload of POST /startups.
type CreateStartupRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	OpenseaLink  *string `json:"opensea_link"`
	CurrentStage string  `json:"current_stage" binding:"required"`
}

// ValidateFunds normalizes a funds_raised edit. Currency keys are
// case-insensitive and must be allowed. Two keys naming the same currency
// are rejected. Amounts are non-negative numbers or numeric strings. The
// result replaces the stored map.
func ValidateFunds(raw map[string]any) (map[string]float64, error) {
	out := make(map[string]float64, len(raw))
	for currency, value := range raw {
		code := strings.ToUpper(strings.TrimSpace(currency))
		if !isAllowedCurrency(code) {
			return nil, serrors.New(serrors.ErrBadRequest, "unsupported currency %q, allowed: %s",
				currency, strings.Join(AllowedCurrencies, ", "))
		}
		if _, dup := out[code]; dup {
			return nil, serrors.New(serrors.ErrBadRequest, "duplicate currency %s", code)
		}

		var amount float64
		switch v := value.(type) {
		case float64:
			amount = v
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, serrors.New(serrors.ErrBadRequest, "invalid amount %q for %s", v, currency)
			}
			amount = f
		default:
			return nil, serrors.New(serrors.ErrBadRequest, "invalid amount for %s", currency)
		}
		if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return nil, serrors.New(serrors.ErrBadRequest, "amount for %s must be a non-negative number", currency)
		}
		out[code] = amount
	}

	return out, nil
}

func isAllowedCurrency(code string) bool {
	for _, c := range AllowedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}
