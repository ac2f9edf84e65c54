// Package service loads store entries and turns them into display item lists.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lepinkainen/storeview/internal/display"
	storeerrors "github.com/lepinkainen/storeview/internal/errors"
	"github.com/lepinkainen/storeview/internal/metrics"
	"github.com/lepinkainen/storeview/internal/storeapi"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds LoadMany when the caller passes a non-positive limit.
const DefaultConcurrency = 4

// Outcome labels used for load metrics.
const (
	OutcomeOK            = "ok"
	OutcomeInvalidID     = "invalid_id"
	OutcomeNotSuccessful = "not_successful"
	OutcomeRateLimited   = "rate_limited"
	OutcomeFetchError    = "fetch_error"
	OutcomeParseError    = "parse_error"
	OutcomeCancelled     = "cancelled"
	OutcomeError         = "error"
)

// DetailsSource provides parsed store entries.
type DetailsSource interface {
	AppDetails(ctx context.Context, appID int) (*storeapi.AppDetails, error)
}

// Result is the display list for one app.
type Result struct {
	AppID int            `json:"app_id" yaml:"app_id"`
	Name  string         `json:"name" yaml:"name"`
	Items []display.Item `json:"items" yaml:"items"`
}

// Outcome pairs an app ID with its result or the error that prevented one.
type Outcome struct {
	AppID  int
	Result *Result
	Err    error
}

// Loader fetches store entries and transforms them.
type Loader struct {
	source      DetailsSource
	transformer *display.Transformer
	now         func() time.Time
}

// NewLoader creates a Loader. A nil transformer uses the default icon CDN.
func NewLoader(source DetailsSource, transformer *display.Transformer) *Loader {
	if transformer == nil {
		transformer = display.NewTransformer()
	}
	return &Loader{
		source:      source,
		transformer: transformer,
		now:         time.Now,
	}
}

// Load fetches and transforms a single app.
func (l *Loader) Load(ctx context.Context, appID int) (*Result, error) {
	start := l.now()

	details, err := l.source.AppDetails(ctx, appID)
	if err != nil {
		outcome := Classify(err)
		metrics.RecordLoad(outcome, l.now().Sub(start))
		slog.Warn("Failed to load app details", "appid", appID, "outcome", outcome, "error", err)
		return nil, err
	}

	result := &Result{
		AppID: details.AppID,
		Name:  details.Name,
		Items: l.transformer.Transform(details),
	}

	metrics.RecordLoad(OutcomeOK, l.now().Sub(start))
	slog.Debug("Loaded app", "appid", appID, "name", details.Name, "items", len(result.Items))
	return result, nil
}

// LoadMany loads every app with at most concurrency loads in flight.
// Outcomes are returned in input order and one failure never cancels the rest.
func (l *Loader) LoadMany(ctx context.Context, appIDs []int, concurrency int) []Outcome {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	outcomes := make([]Outcome, len(appIDs))

	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, appID := range appIDs {
		g.Go(func() error {
			outcomes[i].AppID = appID
			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return nil
			}
			outcomes[i].Result, outcomes[i].Err = l.Load(ctx, appID)
			return nil
		})
	}

	_ = g.Wait()
	return outcomes
}

// Classify maps a load error to a metrics outcome label.
func Classify(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, storeapi.ErrInvalidAppID):
		return OutcomeInvalidID
	case storeerrors.IsNotSuccessfulError(err):
		return OutcomeNotSuccessful
	case storeerrors.IsRateLimitError(err):
		return OutcomeRateLimited
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	case storeerrors.IsFetchError(err):
		return OutcomeFetchError
	case storeerrors.IsParseError(err):
		return OutcomeParseError
	default:
		return OutcomeError
	}
}
