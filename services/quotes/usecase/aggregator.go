package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/kemana-app/kemana/internal/pkg/logger"
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/internal/utils"
	"github.com/kemana-app/kemana/services/quotes"
)

// quoteUC implements the quotes.QuoteUC interface
type quoteUC struct {
	cfg       *models.Config
	pricingGW quotes.PricingGW
	eventsGW  quotes.EventsGW
	repo      quotes.QuoteRepo
	classes   []models.VehicleClass

	// mu guards the per-caller sessions. State and supersession live in the
	// caller's own session, so one user's fetch never cancels or overwrites
	// another's.
	mu       sync.Mutex
	sessions map[string]*fetchSession
}

// fetchSession is one caller's aggregator state. The sequence makes state
// publication last-writer-wins by call order within that caller: a fetch
// whose sequence has been superseded never overwrites a newer one, no
// matter when it completes.
type fetchSession struct {
	seq        uint64
	state      models.QuoteState
	cancelPrev context.CancelFunc
}

// NewQuoteUC creates a new quote aggregation use case
func NewQuoteUC(
	cfg *models.Config,
	pricingGW quotes.PricingGW,
	eventsGW quotes.EventsGW,
	repo quotes.QuoteRepo,
) (quotes.QuoteUC, error) {
	return &quoteUC{
		cfg:       cfg,
		pricingGW: pricingGW,
		eventsGW:  eventsGW,
		repo:      repo,
		classes:   models.SupportedVehicleClasses,
		sessions:  make(map[string]*fetchSession),
	}, nil
}

// FetchQuote queries every supported vehicle class concurrently and merges
// the surviving results. The barrier waits for all classes to settle;
// per-class failures are routine and never abort siblings.
func (uc *quoteUC) FetchQuote(ctx context.Context, callerID string, origin, destination models.Coordinate) (*models.AggregatedRideQuote, error) {
	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sess, fetchSeq := uc.beginFetch(callerID, cancel)

	// The loading flag must end up false on every exit path, including a
	// panic outside the per-class boundaries.
	defer uc.settleFetch(sess, fetchSeq)

	classQuotes := uc.queryAllClasses(fetchCtx, origin, destination)

	currency, options := mergeOptions(classQuotes)

	if len(options) == 0 {
		uc.publish(sess, fetchSeq, models.QuoteState{
			Phase:   models.QuotePhaseEmpty,
			Message: quotes.ErrNoOptions.Error(),
		})
		return nil, quotes.ErrNoOptions
	}

	quote := &models.AggregatedRideQuote{
		ID:          uuid.New(),
		Origin:      origin,
		Destination: destination,
		Currency:    currency,
		Options:     options,
		CreatedAt:   models.Now(),
	}

	uc.publish(sess, fetchSeq, models.QuoteState{
		Phase: models.QuotePhaseSuccess,
		Quote: quote,
	})

	// Persistence, caching, and event publication are best effort; the
	// caller already has the quote in hand.
	uc.recordQuote(ctx, quote)

	return quote, nil
}

// queryAllClasses fans out one pricing query per class and joins on all of
// them. Failed classes contribute nothing; results carry no ordering.
func (uc *quoteUC) queryAllClasses(ctx context.Context, origin, destination models.Coordinate) []*models.ClassQuote {
	results := make(chan *models.ClassQuote, len(uc.classes))

	var wg sync.WaitGroup
	for _, class := range uc.classes {
		wg.Add(1)
		go func(class models.VehicleClass) {
			defer wg.Done()

			classQuote, err := uc.pricingGW.QueryClass(ctx, origin, destination, class)
			if err != nil {
				// Expected and routine: the class may simply not be
				// serviceable on this route.
				logger.Debug("Vehicle class query failed",
					logger.String("class", class.ID),
					logger.Err(err))
				return
			}

			results <- classQuote
		}(class)
	}

	wg.Wait()
	close(results)

	collected := make([]*models.ClassQuote, 0, len(uc.classes))
	for classQuote := range results {
		collected = append(collected, classQuote)
	}
	return collected
}

// mergeOptions flattens successful class quotes into one deduplicated,
// price-sorted sequence and picks the first observed non-empty currency
func mergeOptions(classQuotes []*models.ClassQuote) (string, []models.RideOption) {
	var currency string
	var options []models.RideOption
	seen := make(map[string]struct{})

	for _, classQuote := range classQuotes {
		if currency == "" && classQuote.Currency != "" {
			currency = classQuote.Currency
		}
		for _, option := range classQuote.Options {
			key := option.DedupKey()
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}
			options = append(options, option)
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Price < options[j].Price
	})

	return currency, options
}

// session returns the caller's session, creating an idle one on first use.
// Callers must hold uc.mu.
func (uc *quoteUC) session(callerID string) *fetchSession {
	sess, ok := uc.sessions[callerID]
	if !ok {
		sess = &fetchSession{state: models.QuoteState{Phase: models.QuotePhaseIdle}}
		uc.sessions[callerID] = sess
	}
	return sess
}

// beginFetch transitions the caller's session to loading, clears its
// previous terminal state, and cancels only that caller's fetch still in
// flight
func (uc *quoteUC) beginFetch(callerID string, cancel context.CancelFunc) (*fetchSession, uint64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	sess := uc.session(callerID)
	if sess.cancelPrev != nil {
		sess.cancelPrev()
	}
	sess.cancelPrev = cancel

	sess.seq++
	sess.state = models.QuoteState{
		Phase:   models.QuotePhaseLoading,
		Loading: true,
	}
	return sess, sess.seq
}

// publish applies a terminal state for the given fetch, unless a newer
// fetch by the same caller has already started
func (uc *quoteUC) publish(sess *fetchSession, fetchSeq uint64, state models.QuoteState) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if fetchSeq != sess.seq {
		logger.Debug("Discarding stale aggregation result",
			logger.Int64("stale_seq", int64(fetchSeq)),
			logger.Int64("current_seq", int64(sess.seq)))
		return
	}

	sess.state = state
}

// settleFetch guarantees the loading flag is cleared even when FetchQuote
// unwinds without publishing a terminal state
func (uc *quoteUC) settleFetch(sess *fetchSession, fetchSeq uint64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if fetchSeq == sess.seq && sess.state.Loading {
		sess.state = models.QuoteState{
			Phase:   models.QuotePhaseEmpty,
			Message: quotes.ErrNoOptions.Error(),
		}
	}
}

// recordQuote persists and announces a successful aggregate, best effort
func (uc *quoteUC) recordQuote(ctx context.Context, quote *models.AggregatedRideQuote) {
	if err := uc.repo.SaveQuote(ctx, quote); err != nil {
		logger.Warn("Failed to persist quote",
			logger.String("quote_id", quote.ID.String()),
			logger.Err(err))
	}

	if err := uc.repo.CacheRouteQuote(ctx, quote); err != nil {
		logger.Debug("Failed to cache route quote",
			logger.String("quote_id", quote.ID.String()),
			logger.Err(err))
	}

	event := models.QuoteAggregatedEvent{
		QuoteID:     quote.ID,
		Origin:      quote.Origin,
		Destination: quote.Destination,
		Currency:    quote.Currency,
		OptionCount: len(quote.Options),
		DistanceKm:  utils.CalculateDistance(quote.Origin, quote.Destination),
		CreatedAt:   quote.CreatedAt,
	}
	if len(quote.Options) > 0 {
		event.CheapestID = quote.Options[0].VehicleClassID
	}

	if err := uc.eventsGW.PublishQuoteAggregated(ctx, event); err != nil {
		logger.Warn("Failed to publish quote aggregated event",
			logger.String("quote_id", quote.ID.String()),
			logger.Err(err))
	}
}

// LastState returns the caller's most recently published aggregator state
func (uc *quoteUC) LastState(callerID string) models.QuoteState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.session(callerID).state
}

// LatestRouteQuote returns the cached quote for a route, if any
func (uc *quoteUC) LatestRouteQuote(ctx context.Context, origin, destination models.Coordinate) (*models.AggregatedRideQuote, error) {
	quote, err := uc.repo.GetCachedRouteQuote(ctx, origin, destination)
	if err != nil {
		return nil, quotes.ErrQuoteNotFound
	}
	return quote, nil
}

// GetQuote loads a persisted quote by id
func (uc *quoteUC) GetQuote(ctx context.Context, id uuid.UUID) (*models.AggregatedRideQuote, error) {
	return uc.repo.GetQuote(ctx, id)
}
