package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/services/quotes"
	"github.com/kemana-app/kemana/services/quotes/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCaller = "5f4c1d0a-9f6f-4f26-9f43-0f8f5f3c2a11"

var (
	testOrigin      = models.Coordinate{Latitude: -6.2088, Longitude: 106.8456}
	testDestination = models.Coordinate{Latitude: -6.1751, Longitude: 106.8650}
)

func testQuoteConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingConfig{
			Currency: "IDR",
			Language: "id",
		},
	}
}

func newTestQuoteUC(t *testing.T, ctrl *gomock.Controller) (quotes.QuoteUC, *mocks.MockPricingGW, *mocks.MockEventsGW, *mocks.MockQuoteRepo) {
	t.Helper()

	mockPricing := mocks.NewMockPricingGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)
	mockRepo := mocks.NewMockQuoteRepo(ctrl)

	uc, err := NewQuoteUC(testQuoteConfig(), mockPricing, mockEvents, mockRepo)
	require.NoError(t, err)

	return uc, mockPricing, mockEvents, mockRepo
}

func allowBestEffortPersistence(mockEvents *mocks.MockEventsGW, mockRepo *mocks.MockQuoteRepo) {
	mockRepo.EXPECT().SaveQuote(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRepo.EXPECT().CacheRouteQuote(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockEvents.EXPECT().PublishQuoteAggregated(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestFetchQuote_MergesDeduplicatesAndSorts(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockPricing, mockEvents, mockRepo := newTestQuoteUC(t, ctrl)
	allowBestEffortPersistence(mockEvents, mockRepo)

	econom := models.RideOption{VehicleClassID: "econom", DisplayName: "Econom", Price: 25000, DisplayPrice: "25,000 IDR"}
	business := models.RideOption{VehicleClassID: "business", DisplayName: "Business", Price: 48000, DisplayPrice: "48,000 IDR"}

	backendFailure := errors.New("pricing backend returned status 500")

	// Two classes succeed, one of them echoing the econom option back as a
	// duplicate; three classes fail outright.
	mockPricing.EXPECT().QueryClass(gomock.Any(), testOrigin, testDestination, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ models.Coordinate, class models.VehicleClass) (*models.ClassQuote, error) {
			switch class.ID {
			case "econom":
				return &models.ClassQuote{Currency: "IDR", Options: []models.RideOption{econom}}, nil
			case "business":
				return &models.ClassQuote{Currency: "IDR", Options: []models.RideOption{business, econom}}, nil
			default:
				return nil, backendFailure
			}
		}).Times(len(models.SupportedVehicleClasses))

	// Act
	quote, err := uc.FetchQuote(context.Background(), testCaller, testOrigin, testDestination)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.Equal(t, "IDR", quote.Currency)
	require.Len(t, quote.Options, 2)
	assert.Equal(t, "econom", quote.Options[0].VehicleClassID)
	assert.Equal(t, "business", quote.Options[1].VehicleClassID)
	assert.True(t, sort.SliceIsSorted(quote.Options, func(i, j int) bool {
		return quote.Options[i].Price < quote.Options[j].Price
	}))

	state := uc.LastState(testCaller)
	assert.Equal(t, models.QuotePhaseSuccess, state.Phase)
	assert.False(t, state.Loading)
	require.NotNil(t, state.Quote)
	assert.Equal(t, quote.ID, state.Quote.ID)
}

func TestFetchQuote_AllClassesFail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockPricing, _, _ := newTestQuoteUC(t, ctrl)

	mockPricing.EXPECT().QueryClass(gomock.Any(), testOrigin, testDestination, gomock.Any()).
		Return(nil, errors.New("no availability for vehicle class")).
		Times(len(models.SupportedVehicleClasses))

	// Act
	quote, err := uc.FetchQuote(context.Background(), testCaller, testOrigin, testDestination)

	// Assert
	assert.Nil(t, quote)
	assert.ErrorIs(t, err, quotes.ErrNoOptions)

	state := uc.LastState(testCaller)
	assert.Equal(t, models.QuotePhaseEmpty, state.Phase)
	assert.False(t, state.Loading)
	assert.Equal(t, quotes.ErrNoOptions.Error(), state.Message)
}

func TestFetchQuote_SingleClassSurvives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockPricing, mockEvents, mockRepo := newTestQuoteUC(t, ctrl)
	allowBestEffortPersistence(mockEvents, mockRepo)

	vip := models.RideOption{VehicleClassID: "vip", DisplayName: "VIP", Price: 95000, DisplayPrice: "95,000 IDR"}

	mockPricing.EXPECT().QueryClass(gomock.Any(), testOrigin, testDestination, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ models.Coordinate, class models.VehicleClass) (*models.ClassQuote, error) {
			if class.ID == "vip" {
				return &models.ClassQuote{Currency: "IDR", Options: []models.RideOption{vip}}, nil
			}
			return nil, errors.New("timeout")
		}).Times(len(models.SupportedVehicleClasses))

	quote, err := uc.FetchQuote(context.Background(), testCaller, testOrigin, testDestination)

	require.NoError(t, err)
	require.Len(t, quote.Options, 1)
	assert.Equal(t, "vip", quote.Options[0].VehicleClassID)
}

func TestFetchQuote_SamePriceDifferentClassesKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockPricing, mockEvents, mockRepo := newTestQuoteUC(t, ctrl)
	allowBestEffortPersistence(mockEvents, mockRepo)

	// Identical display price but different class ids: both survive dedup.
	econom := models.RideOption{VehicleClassID: "econom", Price: 30000, DisplayPrice: "30,000 IDR"}
	comfort := models.RideOption{VehicleClassID: "comfortplus", Price: 30000, DisplayPrice: "30,000 IDR"}

	mockPricing.EXPECT().QueryClass(gomock.Any(), testOrigin, testDestination, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ models.Coordinate, class models.VehicleClass) (*models.ClassQuote, error) {
			switch class.ID {
			case "econom":
				return &models.ClassQuote{Currency: "IDR", Options: []models.RideOption{econom}}, nil
			case "comfortplus":
				return &models.ClassQuote{Currency: "IDR", Options: []models.RideOption{comfort}}, nil
			default:
				return nil, errors.New("unavailable")
			}
		}).Times(len(models.SupportedVehicleClasses))

	quote, err := uc.FetchQuote(context.Background(), testCaller, testOrigin, testDestination)

	require.NoError(t, err)
	assert.Len(t, quote.Options, 2)
}

func TestFetchQuote_EmptyOptionListsAcrossClasses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockPricing, _, _ := newTestQuoteUC(t, ctrl)

	// Successful responses carrying zero options still end in the empty
	// business outcome.
	mockPricing.EXPECT().QueryClass(gomock.Any(), testOrigin, testDestination, gomock.Any()).
		Return(&models.ClassQuote{Currency: "IDR", Options: nil}, nil).
		Times(len(models.SupportedVehicleClasses))

	_, err := uc.FetchQuote(context.Background(), testCaller, testOrigin, testDestination)

	assert.ErrorIs(t, err, quotes.ErrNoOptions)
}

func TestFetchQuote_PersistenceFailureDoesNotFailQuote(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockPricing, mockEvents, mockRepo := newTestQuoteUC(t, ctrl)

	econom := models.RideOption{VehicleClassID: "econom", Price: 25000, DisplayPrice: "25,000 IDR"}

	mockPricing.EXPECT().QueryClass(gomock.Any(), testOrigin, testDestination, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ models.Coordinate, class models.VehicleClass) (*models.ClassQuote, error) {
			if class.ID == "econom" {
				return &models.ClassQuote{Currency: "IDR", Options: []models.RideOption{econom}}, nil
			}
			return nil, errors.New("unavailable")
		}).Times(len(models.SupportedVehicleClasses))

	mockRepo.EXPECT().SaveQuote(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	mockRepo.EXPECT().CacheRouteQuote(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	mockEvents.EXPECT().PublishQuoteAggregated(gomock.Any(), gomock.Any()).Return(errors.New("nsq down"))

	// Act
	quote, err := uc.FetchQuote(context.Background(), testCaller, testOrigin, testDestination)

	// Assert: the caller still gets the quote.
	require.NoError(t, err)
	require.Len(t, quote.Options, 1)
}

func TestFetchQuote_StaleFetchNeverOverwritesNewerState(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockPricing, mockEvents, mockRepo := newTestQuoteUC(t, ctrl)
	allowBestEffortPersistence(mockEvents, mockRepo)

	firstStarted := make(chan struct{}, 1)
	release := make(chan struct{})
	slowOption := models.RideOption{VehicleClassID: "econom", Price: 10000, DisplayPrice: "10,000 IDR"}
	fastOption := models.RideOption{VehicleClassID: "business", Price: 50000, DisplayPrice: "50,000 IDR"}

	slowRoute := models.Coordinate{Latitude: 1.0, Longitude: 1.0}
	fastRoute := models.Coordinate{Latitude: 2.0, Longitude: 2.0}

	// First fetch blocks until released, so the second fetch completes
	// while the first is still in flight.
	mockPricing.EXPECT().QueryClass(gomock.Any(), slowRoute, testDestination, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ models.Coordinate, class models.VehicleClass) (*models.ClassQuote, error) {
			select {
			case firstStarted <- struct{}{}:
			default:
			}
			select {
			case <-release:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			return &models.ClassQuote{Currency: "IDR", Options: []models.RideOption{slowOption}}, nil
		}).Times(len(models.SupportedVehicleClasses))

	mockPricing.EXPECT().QueryClass(gomock.Any(), fastRoute, testDestination, gomock.Any()).
		Return(&models.ClassQuote{Currency: "IDR", Options: []models.RideOption{fastOption}}, nil).
		Times(len(models.SupportedVehicleClasses))

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, _ = uc.FetchQuote(context.Background(), testCaller, slowRoute, testDestination)
	}()
	<-firstStarted

	// Act: the second fetch by the same caller supersedes the first.
	quote, err := uc.FetchQuote(context.Background(), testCaller, fastRoute, testDestination)
	require.NoError(t, err)

	close(release)
	<-firstDone

	// Assert: the state still reflects the second fetch even though the
	// first finished later.
	state := uc.LastState(testCaller)
	assert.Equal(t, models.QuotePhaseSuccess, state.Phase)
	assert.False(t, state.Loading)
	require.NotNil(t, state.Quote)
	assert.Equal(t, quote.ID, state.Quote.ID)
	assert.Equal(t, "business", state.Quote.Options[0].VehicleClassID)
}

func TestFetchQuote_ConcurrentCallersDoNotInterfere(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockPricing, mockEvents, mockRepo := newTestQuoteUC(t, ctrl)
	allowBestEffortPersistence(mockEvents, mockRepo)

	slowStarted := make(chan struct{}, 1)
	release := make(chan struct{})
	slowOption := models.RideOption{VehicleClassID: "econom", Price: 10000, DisplayPrice: "10,000 IDR"}
	fastOption := models.RideOption{VehicleClassID: "business", Price: 50000, DisplayPrice: "50,000 IDR"}

	slowRoute := models.Coordinate{Latitude: 3.0, Longitude: 3.0}
	fastRoute := models.Coordinate{Latitude: 4.0, Longitude: 4.0}

	// The first caller's fetch stays in flight while the second caller's
	// completes. If the second fetch cancelled the first one's context, the
	// first caller would come back empty-handed on a serviceable route.
	mockPricing.EXPECT().QueryClass(gomock.Any(), slowRoute, testDestination, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ models.Coordinate, class models.VehicleClass) (*models.ClassQuote, error) {
			select {
			case slowStarted <- struct{}{}:
			default:
			}
			select {
			case <-release:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			return &models.ClassQuote{Currency: "IDR", Options: []models.RideOption{slowOption}}, nil
		}).Times(len(models.SupportedVehicleClasses))

	mockPricing.EXPECT().QueryClass(gomock.Any(), fastRoute, testDestination, gomock.Any()).
		Return(&models.ClassQuote{Currency: "IDR", Options: []models.RideOption{fastOption}}, nil).
		Times(len(models.SupportedVehicleClasses))

	type fetchResult struct {
		quote *models.AggregatedRideQuote
		err   error
	}
	firstDone := make(chan fetchResult, 1)
	go func() {
		quote, err := uc.FetchQuote(context.Background(), "passenger-a", slowRoute, testDestination)
		firstDone <- fetchResult{quote, err}
	}()
	<-slowStarted

	// Act: an unrelated caller fetches while the first is still in flight.
	secondQuote, err := uc.FetchQuote(context.Background(), "passenger-b", fastRoute, testDestination)
	require.NoError(t, err)

	close(release)
	first := <-firstDone

	// Assert: the first caller still gets a real quote.
	require.NoError(t, first.err)
	require.NotNil(t, first.quote)
	assert.Equal(t, "econom", first.quote.Options[0].VehicleClassID)

	// Each caller observes only their own terminal state.
	stateA := uc.LastState("passenger-a")
	assert.Equal(t, models.QuotePhaseSuccess, stateA.Phase)
	require.NotNil(t, stateA.Quote)
	assert.Equal(t, first.quote.ID, stateA.Quote.ID)

	stateB := uc.LastState("passenger-b")
	assert.Equal(t, models.QuotePhaseSuccess, stateB.Phase)
	require.NotNil(t, stateB.Quote)
	assert.Equal(t, secondQuote.ID, stateB.Quote.ID)
}

func TestLastState_InitiallyIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _ := newTestQuoteUC(t, ctrl)

	state := uc.LastState(testCaller)

	assert.Equal(t, models.QuotePhaseIdle, state.Phase)
	assert.False(t, state.Loading)
}

func TestLatestRouteQuote_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, mockRepo := newTestQuoteUC(t, ctrl)

	cached := &models.AggregatedRideQuote{ID: uuid.New(), Currency: "IDR"}
	mockRepo.EXPECT().GetCachedRouteQuote(gomock.Any(), testOrigin, testDestination).Return(cached, nil)

	quote, err := uc.LatestRouteQuote(context.Background(), testOrigin, testDestination)

	require.NoError(t, err)
	assert.Equal(t, cached.ID, quote.ID)
}

func TestLatestRouteQuote_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, mockRepo := newTestQuoteUC(t, ctrl)

	mockRepo.EXPECT().GetCachedRouteQuote(gomock.Any(), testOrigin, testDestination).Return(nil, errors.New("cache miss"))

	_, err := uc.LatestRouteQuote(context.Background(), testOrigin, testDestination)

	assert.ErrorIs(t, err, quotes.ErrQuoteNotFound)
}

func TestGetQuote_DelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, mockRepo := newTestQuoteUC(t, ctrl)

	id := uuid.New()
	stored := &models.AggregatedRideQuote{ID: id}
	mockRepo.EXPECT().GetQuote(gomock.Any(), id).Return(stored, nil)

	quote, err := uc.GetQuote(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, quote.ID)
}
