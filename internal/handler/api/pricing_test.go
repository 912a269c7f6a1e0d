//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"field-booking/internal/domain/booking"
	"field-booking/internal/handler/api"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/usecase/queries"
	"field-booking/tests/common/builder"
	"field-booking/tests/common/httptest"
	queriesmock "field-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPricingQueries
	handler     *api.PricingHandler
}

func (s *PricingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(&s.Suite)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockQueries)

	s.router.GET("/resource-types/:id/rates", s.handler.GetRate)
	s.router.GET("/resources/:id/quote", s.handler.Quote)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func (s *PricingHandlerTestSuite) TestGetRate() {
	typeID := uuid.New()
	base := "/resource-types/" + typeID.String() + "/rates"
	tier := booking.Tier{Day: booking.Weekend, Band: booking.Morning}

	s.Run("success: returns the per-unit price", func() {
		s.mockQueries.EXPECT().GetPrice(gomock.Any(), typeID, tier).
			Return(&queries.RateView{ResourceTypeID: typeID, DayType: "weekend", TimeBand: "morning", PricePerUnit: 150000}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?dayType=weekend&timeBand=morning", nil, "")

		var response resdto.RateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(typeID, response.ResourceTypeID)
		s.Equal(int64(150000), response.PricePerUnit)
	})

	s.Run("error: 400 for unknown tier names", func() {
		for _, q := range []string{"?dayType=holiday&timeBand=morning", "?dayType=weekend&timeBand=night", "?dayType=weekend"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 422 when the rate card has no row", func() {
		s.mockQueries.EXPECT().GetPrice(gomock.Any(), typeID, tier).
			Return(nil, booking.NewRateNotFound(booking.RateKey{ResourceTypeID: typeID, Tier: tier})).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?dayType=weekend&timeBand=morning", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "No rate")
	})
}

func (s *PricingHandlerTestSuite) TestQuote() {
	resourceID := uuid.New()
	base := "/resources/" + resourceID.String() + "/quote"
	window := builder.MustWindow(builder.DefaultDate, "18:00", "21:00")

	s.Run("success: units times the tier rate", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), resourceID, window).
			Return(&queries.QuoteView{
				ResourceID:   resourceID,
				Units:        3,
				UnitMinutes:  60,
				DayType:      "weekday",
				TimeBand:     "evening",
				PricePerUnit: 120000,
				TotalPrice:   360000,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date="+builder.DefaultDate+"&start=18:00&end=21:00", nil, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.Units)
		s.Equal(int64(360000), response.TotalPrice)
		s.Equal("evening", response.TimeBand)
	})

	s.Run("error: 400 for a missing window field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date="+builder.DefaultDate+"&start=18:00", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
