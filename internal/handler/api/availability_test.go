//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"field-booking/internal/handler/api"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/queries"
	"field-booking/tests/common/builder"
	"field-booking/tests/common/httptest"
	"field-booking/tests/common/testutil"
	queriesmock "field-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(&s.Suite)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/resources/:id/availability", s.handler.Check)
	s.router.POST("/availability/bulk", s.handler.CheckBulk)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

// ================================================================================
// TestCheck
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestCheck() {
	resourceID := uuid.New()
	base := "/resources/" + resourceID.String() + "/availability"
	window := builder.MustWindow(builder.DefaultDate, builder.DefaultStart, builder.DefaultEnd)
	query := "?date=" + builder.DefaultDate + "&start=" + builder.DefaultStart + "&end=" + builder.DefaultEnd

	s.Run("success: free window", func() {
		s.mockQueries.EXPECT().Check(gomock.Any(), resourceID, window).
			Return(&queries.AvailabilityView{ResourceID: resourceID, Available: true, Conflicts: []queries.BusySlotView{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+query, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.Empty(response.Conflicts)
		s.NotNil(response.Conflicts)
	})

	s.Run("success: busy window lists conflicts", func() {
		expires := time.Date(2025, time.March, 10, 17, 5, 0, 0, time.UTC)
		view := &queries.AvailabilityView{
			ResourceID: resourceID,
			Conflicts: []queries.BusySlotView{
				{Source: "booking", RefID: uuid.New(), Date: builder.DefaultDate, Start: "17:00", End: "18:30"},
				{Source: "hold", RefID: uuid.New(), Date: builder.DefaultDate, Start: "18:30", End: "19:00", ExpiresAt: &expires},
			},
		}
		s.mockQueries.EXPECT().Check(gomock.Any(), resourceID, window).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+query, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
		s.Require().Len(response.Conflicts, 2)
		s.Equal("booking", response.Conflicts[0].Source)
		s.Equal(view.Conflicts[0].RefID, response.Conflicts[0].RefID)
		s.Nil(response.Conflicts[0].ExpiresAt)
		s.Require().NotNil(response.Conflicts[1].ExpiresAt)
		s.True(expires.Equal(*response.Conflicts[1].ExpiresAt))
	})

	s.Run("success: resource not open for booking", func() {
		s.mockQueries.EXPECT().Check(gomock.Any(), resourceID, window).
			Return(&queries.AvailabilityView{ResourceID: resourceID, Reason: "resource_unavailable", Conflicts: []queries.BusySlotView{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+query, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
		s.Equal("resource_unavailable", response.Reason)
	})

	s.Run("error: 400 for malformed or inverted windows", func() {
		for _, q := range []string{
			"?date=2025-03-10&start=18:00",
			"?date=10-03-2025&start=18:00&end=19:00",
			"?date=2025-03-10&start=1800&end=19:00",
			"?date=2025-03-10&start=19:00&end=18:00",
			"?date=2025-03-10&start=19:00&end=19:00",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 400 for invalid resource id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/x/availability"+query, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resource id")
	})

	s.Run("error: 404 for an unknown resource", func() {
		s.mockQueries.EXPECT().Check(gomock.Any(), resourceID, window).
			Return(nil, errs.Mark(errors.New("resource not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+query, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestCheckBulk
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestCheckBulk() {
	url := "/availability/bulk"
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	window := builder.MustWindow(builder.DefaultDate, builder.DefaultStart, builder.DefaultEnd)
	reqBody := map[string]any{
		"resourceIds": ids,
		"date":        builder.DefaultDate,
		"start":       builder.DefaultStart,
		"end":         builder.DefaultEnd,
	}

	s.Run("success: returns one result per candidate and the free subset", func() {
		view := &queries.BulkAvailabilityView{
			Date:  builder.DefaultDate,
			Start: builder.DefaultStart,
			End:   builder.DefaultEnd,
			Free:  []uuid.UUID{ids[1]},
			Results: []queries.AvailabilityView{
				{ResourceID: ids[0], Conflicts: []queries.BusySlotView{{Source: "booking", RefID: uuid.New(), Date: builder.DefaultDate, Start: "18:00", End: "19:00"}}},
				{ResourceID: ids[1], Available: true, Conflicts: []queries.BusySlotView{}},
			},
		}
		s.mockQueries.EXPECT().CheckBulk(gomock.Any(), ids, window).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BulkAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]uuid.UUID{ids[1]}, response.Free)
		s.Require().Len(response.Results, 2)
		s.Equal(ids[0], response.Results[0].ResourceID)
		s.False(response.Results[0].Available)
		s.True(response.Results[1].Available)
	})

	s.Run("success: no free resources yields an empty list", func() {
		view := &queries.BulkAvailabilityView{Date: builder.DefaultDate, Start: builder.DefaultStart, End: builder.DefaultEnd}
		s.mockQueries.EXPECT().CheckBulk(gomock.Any(), ids, window).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"free":[]`)
	})

	s.Run("error: 400 on validation errors", func() {
		tooMany := make([]string, 201)
		for i := range tooMany {
			tooMany[i] = uuid.NewString()
		}
		cases := []func(map[string]any){
			testutil.Field("resourceIds", nil),
			testutil.Field("resourceIds", []string{}),
			testutil.Field("resourceIds", tooMany),
			testutil.Field("resourceIds", []string{"not-a-uuid"}),
			testutil.Field("date", nil),
			testutil.Field("start", "18"),
		}
		for _, mutate := range cases {
			requestMap := testutil.DtoMap(s.T(), reqBody, mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 500 when the read fails", func() {
		s.mockQueries.EXPECT().CheckBulk(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.False(strings.Contains(rec.Body.String(), "connection reset"))
	})
}
