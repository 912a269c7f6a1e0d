package booking

import (
	"fmt"

	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type RateKey struct {
	ResourceTypeID uuid.UUID
	Tier           Tier
}

type RateNotFoundError struct {
	Key RateKey
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("no rate for resource type %s on %s %s", e.Key.ResourceTypeID, e.Key.Tier.Day, e.Key.Tier.Band)
}

func NewRateNotFound(key RateKey) error {
	return errs.Mark(&RateNotFoundError{Key: key}, errs.ErrRateNotFound)
}

// Quote is the charge for a window: units times the tier's per-unit rate.
type Quote struct {
	Tier    Tier
	Units   int
	PerUnit Money
	Total   Money
}

func NewQuote(tier Tier, units int, perUnit Money) Quote {
	return Quote{
		Tier:    tier,
		Units:   units,
		PerUnit: perUnit,
		Total:   perUnit.Times(units),
	}
}
