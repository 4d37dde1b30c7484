package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"finplanner/internal/models"
	"finplanner/internal/repositories"
	"finplanner/internal/repositories/repository_mocks"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	echo            *echo.Echo
	mockProfileRepo *repository_mocks.MockProfileRepositoryInterface
	handler         *ProfileHandler
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockProfileRepo = repository_mocks.NewMockProfileRepositoryInterface(s.ctrl)
	s.handler = NewProfileHandler(s.mockProfileRepo)
}

func (s *ProfileHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProfileHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func (s *ProfileHandlerTestSuite) newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *ProfileHandlerTestSuite) TestGetProfile_Success() {
	age := 34
	income := decimal.NewFromInt(5000)
	s.mockProfileRepo.EXPECT().
		GetByUserID("user-42").
		Return(&models.UserProfile{
			UserID:        "user-42",
			Name:          "Jordan",
			Age:           &age,
			MonthlyIncome: &income,
			RiskTolerance: models.RiskToleranceModerate,
		}, nil)

	c, rec := s.newJSONContext(http.MethodGet, "/api/profile?user_id=user-42", "")

	s.NoError(s.handler.GetProfile(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "user-42")
	s.Contains(rec.Body.String(), "moderate")
}

func (s *ProfileHandlerTestSuite) TestGetProfile_DefaultUserID() {
	s.mockProfileRepo.EXPECT().
		GetByUserID(defaultUserID).
		Return(&models.UserProfile{UserID: defaultUserID}, nil)

	c, rec := s.newJSONContext(http.MethodGet, "/api/profile", "")

	s.NoError(s.handler.GetProfile(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ProfileHandlerTestSuite) TestGetProfile_NotFound() {
	s.mockProfileRepo.EXPECT().
		GetByUserID(defaultUserID).
		Return(nil, repositories.ErrProfileNotFound)

	c, rec := s.newJSONContext(http.MethodGet, "/api/profile", "")

	s.NoError(s.handler.GetProfile(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "PROFILE_001")
}

func (s *ProfileHandlerTestSuite) TestUpsertProfile_Success() {
	s.mockProfileRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(profile *models.UserProfile) error {
			s.Equal("user-42", profile.UserID)
			s.Equal("Jordan", profile.Name)
			s.NotNil(profile.Age)
			s.Equal(34, *profile.Age)
			s.True(profile.NotificationEnabled)
			return nil
		})

	body := `{"user_id":"user-42","name":"Jordan","age":34,"monthly_income":"5000","risk_tolerance":"moderate"}`
	c, rec := s.newJSONContext(http.MethodPut, "/api/profile", body)

	s.NoError(s.handler.UpsertProfile(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ProfileHandlerTestSuite) TestUpsertProfile_NotificationsDisabled() {
	s.mockProfileRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(profile *models.UserProfile) error {
			s.False(profile.NotificationEnabled)
			return nil
		})

	body := `{"name":"Jordan","notification_enabled":false}`
	c, rec := s.newJSONContext(http.MethodPut, "/api/profile", body)

	s.NoError(s.handler.UpsertProfile(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ProfileHandlerTestSuite) TestUpsertProfile_InvalidRiskTolerance() {
	body := `{"risk_tolerance":"yolo"}`
	c, _ := s.newJSONContext(http.MethodPut, "/api/profile", body)

	s.Error(s.handler.UpsertProfile(c))
}

func (s *ProfileHandlerTestSuite) TestUpsertProfile_InvalidAge() {
	body := `{"age":7}`
	c, _ := s.newJSONContext(http.MethodPut, "/api/profile", body)

	s.Error(s.handler.UpsertProfile(c))
}

func (s *ProfileHandlerTestSuite) TestUpsertProfile_RepositoryError() {
	s.mockProfileRepo.EXPECT().
		Upsert(gomock.Any()).
		Return(repositories.ErrProfileNotFound)

	body := `{"name":"Jordan"}`
	c, rec := s.newJSONContext(http.MethodPut, "/api/profile", body)

	s.NoError(s.handler.UpsertProfile(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
}

func (s *ProfileHandlerTestSuite) TestDeleteProfile_Success() {
	s.mockProfileRepo.EXPECT().
		Delete("user-42").
		Return(nil)

	c, rec := s.newJSONContext(http.MethodDelete, "/api/profile?user_id=user-42", "")

	s.NoError(s.handler.DeleteProfile(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ProfileHandlerTestSuite) TestDeleteProfile_NotFound() {
	s.mockProfileRepo.EXPECT().
		Delete(defaultUserID).
		Return(repositories.ErrProfileNotFound)

	c, rec := s.newJSONContext(http.MethodDelete, "/api/profile", "")

	s.NoError(s.handler.DeleteProfile(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "PROFILE_001")
}
