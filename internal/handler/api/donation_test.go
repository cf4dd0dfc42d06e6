//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"foodshare/internal/domain/user"
	"foodshare/internal/handler/api"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/usecase/queries"
	"foodshare/tests/common/builder"
	"foodshare/tests/common/httptest"
	"foodshare/tests/common/testutil"
	commandsmock "foodshare/tests/mock/commands"
	queriesmock "foodshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DonationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDonationCommands
	mockQueries  *queriesmock.MockDonationQueries
	handler      *api.DonationHandler
	userID       uuid.UUID
}

func (s *DonationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDonationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDonationQueries(s.mockCtrl)
	s.handler = api.NewDonationHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleRecipient)
		c.Next()
	}

	s.router.POST("/donations", authMiddleware, s.handler.CreateDonation)
	s.router.GET("/donations", s.handler.ListDonations)
	s.router.GET("/donations/:id", s.handler.GetDonation)
	s.router.POST("/donations/:id/reserve", authMiddleware, s.handler.ReserveDonation)
	s.router.POST("/donations/:id/pickup", authMiddleware, s.handler.ConfirmPickup)
	s.router.DELETE("/donations/:id", authMiddleware, s.handler.DeleteDonation)
}

func (s *DonationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDonationHandlerSuite(t *testing.T) {
	suite.Run(t, new(DonationHandlerTestSuite))
}

func (s *DonationHandlerTestSuite) TestCreateDonation() {
	url := "/donations"
	reqBody := builder.NewDonationBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the new ID", func() {
		donationID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(donationID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(donationID.String(), body["id"])
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 on missing required fields", func() {
		for _, field := range []string{"title", "description", "food_type", "quantity_amount"} {
			s.Run("missing "+field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 422 on domain validation failure", func() {
		// The command layer marks the domain cause rather than wrapping it, so
		// the handler must still map the sentinel.
		validationErr := errs.Mark(errs.New("expiration date must be in the future"), commands.ErrDonationValidation)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(uuid.Nil, validationErr)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "validation")
	})
}

func (s *DonationHandlerTestSuite) TestListDonations() {
	s.Run("success: passes filters through", func() {
		views := []*queries.DonationView{
			builder.NewDonationBuilder().BuildView(),
			builder.NewDonationBuilder().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.DonationFilter) ([]*queries.DonationView, error) {
				s.Require().NotNil(filter.FoodType)
				s.Equal("vegetables", *filter.FoodType)
				s.Equal(int32(5), filter.Limit)
				return views, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/donations?food_type=vegetables&limit=5", nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})
}

func (s *DonationHandlerTestSuite) TestGetDonation() {
	s.Run("success", func() {
		view := builder.NewDonationBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/donations/"+view.ID.String(), nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body["id"])
		s.Equal(view.Title, body["title"])
	})

	s.Run("error: 404 for unknown donation", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrDonationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/donations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/donations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid donation ID")
	})
}

func (s *DonationHandlerTestSuite) TestReserveDonation() {
	donationID := uuid.New()
	url := "/donations/" + donationID.String() + "/reserve"

	s.Run("success: returns 201 with the opened order", func() {
		orderID := uuid.New()
		s.mockCommands.EXPECT().Reserve(gomock.Any(), donationID, s.userID).Return(orderID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(orderID.String(), body["orderId"])
	})

	s.Run("error: 404 for unknown donation", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), donationID, s.userID).
			Return(uuid.Nil, commands.ErrDonationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 when reserving own donation", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), donationID, s.userID).
			Return(uuid.Nil, commands.ErrOwnDonation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "own donation")
	})

	s.Run("error: 409 when donation is not available", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), donationID, s.userID).
			Return(uuid.Nil, commands.ErrDonationNotAvailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")
	})
}

func (s *DonationHandlerTestSuite) TestConfirmPickup() {
	donationID := uuid.New()
	url := "/donations/" + donationID.String() + "/pickup"

	s.Run("success", func() {
		s.mockCommands.EXPECT().ConfirmPickup(gomock.Any(), donationID, s.userID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Pickup confirmed", body["message"])
	})

	s.Run("error: 400 when not reserved", func() {
		s.mockCommands.EXPECT().ConfirmPickup(gomock.Any(), donationID, s.userID).
			Return(commands.ErrDonationNotReserved)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "reserved")
	})

	s.Run("error: 403 when reserved by someone else", func() {
		s.mockCommands.EXPECT().ConfirmPickup(gomock.Any(), donationID, s.userID).
			Return(commands.ErrNotAuthorized)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "different user")
	})
}

func (s *DonationHandlerTestSuite) TestDeleteDonation() {
	donationID := uuid.New()
	url := "/donations/" + donationID.String()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), donationID, s.userID, user.RoleRecipient).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Donation deleted", body["message"])
	})

	s.Run("error: 403 when not the donor", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), donationID, s.userID, user.RoleRecipient).
			Return(commands.ErrNotAuthorized)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
