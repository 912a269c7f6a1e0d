//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"field-booking/internal/domain/actor"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/hold"
	"field-booking/internal/domain/resource"
	"field-booking/internal/handler/api"
	reqdto "field-booking/internal/handler/dto/request"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/handler/middleware"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"
	"field-booking/tests/common/builder"
	"field-booking/tests/common/httptest"
	"field-booking/tests/common/testutil"
	commandsmock "field-booking/tests/mock/commands"
	queriesmock "field-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for the JWT middleware: any bearer token authenticates as act.
func fakeAuth(act *actor.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, *act)
		c.Next()
	}
}

func newTestRouter(s *suite.Suite) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	return gin.New()
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	actor        actor.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(&s.Suite)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actor = actor.Actor{ID: uuid.New(), Role: actor.RoleCustomer}

	auth := fakeAuth(&s.actor)
	s.router.POST("/bookings", auth, s.handler.Finalize)
	s.router.GET("/bookings/:id", auth, s.handler.Get)
	s.router.POST("/bookings/:id/cancel", auth, s.handler.Cancel)
	s.router.GET("/customers/:id/bookings", auth, s.handler.ListByCustomer)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestFinalize
// ================================================================================

func (s *BookingHandlerTestSuite) TestFinalize() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildFinalizeRequestDTO()
	result := &commands.FinalizeResult{
		BookingID: b.ID,
		Quote:     booking.NewQuote(booking.Tier{Day: booking.Weekday, Band: booking.Evening}, 1, mustMoney(s, 120000)),
	}

	bound := []testCaseBooking{
		{name: "end at midnight OK", mutate: testutil.Field("end", "24:00"), expectCode: http.StatusCreated},
		{name: "in_person channel OK", mutate: testutil.Field("channel", "in_person"), expectCode: http.StatusCreated},
		{name: "unknown channel", mutate: testutil.Field("channel", "phone"), expectCode: http.StatusBadRequest},
		{name: "malformed date", mutate: testutil.Field("date", "2025/03/10"), expectCode: http.StatusBadRequest},
		{name: "malformed start", mutate: testutil.Field("start", "6pm"), expectCode: http.StatusBadRequest},
		{name: "hour out of range", mutate: testutil.Field("end", "25:00"), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseBooking{
		{name: "missing field: resourceId (required)", mutate: testutil.Field("resourceId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: date (required)", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: start (required)", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: end (required)", mutate: testutil.Field("end", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: channel (required)", mutate: testutil.Field("channel", nil), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseBooking{bound, missing}

	s.Run("success: returns 201 Created with the confirmation", func() {
		s.mockCommands.EXPECT().Finalize(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ any, _ actor.Actor, in commands.FinalizeInput) (*commands.FinalizeResult, error) {
				s.Equal(b.ResourceID, in.ResourceID)
				s.Equal("18:00", in.Window.Start().String())
				s.Equal(booking.ChannelOnline, in.Channel)
				s.Nil(in.CustomerID)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.BookingID)
		s.Equal(1, body.Units)
		s.Equal("weekday", body.DayType)
		s.Equal("evening", body.TimeBand)
		s.Equal(int64(120000), body.TotalPrice)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + b.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range allValidationTestCases {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any()).
							Return(result, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 400 with field detail for a binding failure", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("channel", "phone"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

		detail := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		fields, ok := detail["fields"].([]any)
		s.Require().True(ok)
		s.Require().Len(fields, 1)
		s.Equal("channel", fields[0].(map[string]any)["rule"])
	})

	s.Run("error: 400 Invalid time window when end is not after start", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("start", "19:00"), testutil.Field("end", "18:00"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		detail := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time window")
		s.Contains(detail["reason"], "must be after")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		window := b.Window()
		unit := resource.UnitHalfSession
		_, mismatch := booking.CountUnits(window.Start(), window.End(), unit)
		conflict := booking.NewConflict(b.ResourceID, window, booking.ReasonOccupied, []booking.BusySlot{
			{ResourceID: b.ResourceID, Window: window, Source: booking.SourceBooking, RefID: uuid.New()},
		})
		holdErr := booking.WrapConflict(
			errs.Mark(&hold.StateError{HoldID: uuid.New(), State: hold.StateExpired, Reason: hold.ReasonExpired}, errs.ErrHoldExpired),
			b.ResourceID, window, booking.ReasonHoldRejected)

		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
			expectedDetail map[string]any
		}{
			{
				name:           "unit mismatch",
				commandsError:  mismatch,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not a multiple",
				expectedDetail: map[string]any{"unitMinutes": float64(90), "durationMinutes": float64(60)},
			},
			{
				name:           "slot occupied",
				commandsError:  conflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot unavailable",
				expectedDetail: map[string]any{"reason": booking.ReasonOccupied},
			},
			{
				name:           "contention after retries",
				commandsError:  booking.WrapConflict(errors.New("serialization"), b.ResourceID, window, booking.ReasonContention),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot unavailable",
				expectedDetail: map[string]any{"reason": booking.ReasonContention},
			},
			{
				name:           "expired hold",
				commandsError:  holdErr,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot unavailable",
				expectedDetail: map[string]any{"reason": booking.ReasonHoldRejected, "holdState": "expired", "holdReason": "expired"},
			},
			{
				name: "rate missing",
				commandsError: booking.NewRateNotFound(booking.RateKey{
					ResourceTypeID: uuid.New(),
					Tier:           booking.Tier{Day: booking.Weekday, Band: booking.Evening},
				}),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "No rate",
				expectedDetail: map[string]any{"dayType": "weekday", "timeBand": "evening"},
			},
			{
				name:           "resource not found",
				commandsError:  errs.Mark(errors.New("resource not found"), errs.ErrNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "booking for someone else",
				commandsError:  errs.Mark(errors.New("nope"), errs.ErrForbidden),
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "staff without customer",
				commandsError:  commands.ErrCustomerRequired,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "customer id is required",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				detail := httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				for k, v := range tc.expectedDetail {
					s.Equal(v, detail[k], "detail %s", k)
				}
			})
		}
	})

	s.Run("conflict detail lists the overlapping slots", func() {
		window := b.Window()
		refID := uuid.New()
		conflict := booking.NewConflict(b.ResourceID, window, booking.ReasonOccupied, []booking.BusySlot{
			{ResourceID: b.ResourceID, Window: window, Source: booking.SourceHold, RefID: refID},
		})
		s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, conflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		detail := httptest.AssertConflictReason(s.T(), rec, booking.ReasonOccupied)
		conflicts, ok := detail["conflicts"].([]any)
		s.Require().True(ok)
		s.Require().Len(conflicts, 1)
		first := conflicts[0].(map[string]any)
		s.Equal("hold", first["source"])
		s.Equal(refID.String(), first["refId"])
		s.Equal("18:00", first["start"])
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.ResourceName, response.ResourceName)
		s.Equal(view.Start, response.Start)
		s.Equal(view.TotalPrice, response.TotalPrice)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing or foreign booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).
			Return(nil, errs.Mark(errors.New("booking not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestListByCustomer
// ================================================================================

func (s *BookingHandlerTestSuite) TestListByCustomer() {
	url := "/customers/" + s.actor.ID.String() + "/bookings"

	items := []*queries.BookingListItem{
		builder.NewBookingBuilder().BuildListItem(),
		builder.NewBookingBuilder().BuildListItem(),
	}

	s.Run("success: returns the page and the next cursor", func() {
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.actor, s.actor.ID, (*queries.Cursor)(nil), 2).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=2", nil, "bearer-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, 2)
		s.Equal(items[0].ID, response.Bookings[0].ID)
		s.Equal("next-page", response.NextCursor)
	})

	s.Run("success: passes the cursor and default limit", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), gomock.Any(), s.actor.ID, &queries.Cursor{After: "abc"}, queries.ValidateLimit(0)).
			Return([]*queries.BookingListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=abc", nil, "bearer-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Bookings)
		s.Empty(response.NextCursor)
	})

	s.Run("success: limit above the maximum is clamped", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), gomock.Any(), s.actor.ID, (*queries.Cursor)(nil), queries.MaxListLimit).
			Return([]*queries.BookingListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5000", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for a negative limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=-1", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 for a bad cursor", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errors.New("bad cursor"), errs.ErrInvalidCursor)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=not-a-cursor", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 403 for another customer's list", func() {
		other := "/customers/" + uuid.NewString() + "/bookings"
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errors.New("forbidden"), errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, other, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 400 for invalid customer id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/nope/bookings", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid customer id")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, bookingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not found", commandsError: errs.Mark(errors.New("missing"), errs.ErrNotFound), expectedStatus: http.StatusNotFound, expectedMsg: "Not found"},
			{name: "foreign booking", commandsError: errs.Mark(errors.New("nope"), errs.ErrForbidden), expectedStatus: http.StatusForbidden, expectedMsg: "Access denied"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), bookingID).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/x/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func mustMoney(s *BookingHandlerTestSuite, amount int64) booking.Money {
	m, err := booking.NewMoney(amount)
	s.Require().NoError(err)
	return m
}
