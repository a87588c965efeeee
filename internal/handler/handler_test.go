package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/dto"
	"github.com/tbcare/screening-api/internal/models"
	"github.com/tbcare/screening-api/internal/service"
	appErrors "github.com/tbcare/screening-api/pkg/errors"
)

type userServiceMock struct {
	signupCalls int
	loginResult *models.LoginResult
	err         error
	updatedID   int64
	assigned    []int64
}

func (m *userServiceMock) Signup(ctx context.Context, req dto.SignupRequest) (*models.User, error) {
	m.signupCalls++
	if m.err != nil {
		return nil, m.err
	}
	return &models.User{ID: 1, Email: req.Email, State: models.UserStateVerified}, nil
}

func (m *userServiceMock) Login(ctx context.Context, req dto.LoginRequest) (*models.LoginResult, error) {
	return m.loginResult, m.err
}

func (m *userServiceMock) List(ctx context.Context) ([]models.User, error) {
	return []models.User{}, m.err
}

func (m *userServiceMock) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error) {
	m.updatedID = id
	return &models.User{ID: id}, m.err
}

func (m *userServiceMock) AssignRole(ctx context.Context, userID, siteID, regionID int64, req dto.AssignRoleRequest) error {
	m.assigned = []int64{userID, siteID, regionID}
	return m.err
}

type exportServiceMock struct {
	req    models.ExportRequest
	result *models.ExportResult
	err    error
	body   string
	closed bool
}

func (m *exportServiceMock) Export(ctx context.Context, req models.ExportRequest) (*models.ExportResult, error) {
	m.req = req
	return m.result, m.err
}

type trackedReader struct {
	io.Reader
	mock *exportServiceMock
}

func (r trackedReader) Close() error {
	r.mock.closed = true
	return nil
}

func (m *exportServiceMock) Download(ctx context.Context, token string) (io.ReadCloser, *models.ExportDownload, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	return trackedReader{Reader: strings.NewReader(m.body), mock: m}, &models.ExportDownload{
		Filename: "export-" + token + ".csv", ContentType: "text/csv", Size: int64(len(m.body)),
	}, nil
}

func newGinContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestUserHandlerSignupRejectsMalformedBody(t *testing.T) {
	svc := &userServiceMock{}
	handler := NewUserHandler(svc, zap.NewNop())

	c, w := newGinContext(http.MethodPost, "/signup", []byte(`{"email":`))
	handler.Signup(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid payload", w.Body.String())
	assert.Zero(t, svc.signupCalls)
}

func TestUserHandlerSignup(t *testing.T) {
	handler := NewUserHandler(&userServiceMock{}, zap.NewNop())

	c, w := newGinContext(http.MethodPost, "/signup", []byte(`{"email":"a@b.c","password":"p"}`))
	handler.Signup(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"verified"`)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestUserHandlerSignupConflict(t *testing.T) {
	handler := NewUserHandler(&userServiceMock{err: appErrors.Clone(appErrors.ErrConflict, "user already exists")}, zap.NewNop())

	c, w := newGinContext(http.MethodPost, "/signup", []byte(`{}`))
	handler.Signup(c)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "user already exists", w.Body.String())
}

func TestUserHandlerLoginSetsSessionHeader(t *testing.T) {
	svc := &userServiceMock{loginResult: &models.LoginResult{User: &models.User{ID: 4}, SessionToken: "tok"}}
	handler := NewUserHandler(svc, zap.NewNop())

	c, w := newGinContext(http.MethodPost, "/login", []byte(`{"email":"a@b.c","password":"p"}`))
	handler.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", w.Header().Get(SessionHeader))
}

func TestUserHandlerLoginUnauthenticated(t *testing.T) {
	svc := &userServiceMock{err: appErrors.Clone(appErrors.ErrUnauthenticated, "invalid email or password")}
	handler := NewUserHandler(svc, zap.NewNop())

	c, w := newGinContext(http.MethodPost, "/login", []byte(`{"email":"a@b.c","password":"x"}`))
	handler.Login(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid email or password", w.Body.String())
	assert.Empty(t, w.Header().Get(SessionHeader))
}

func TestUserHandlerUpdateRejectsNonIntegerID(t *testing.T) {
	svc := &userServiceMock{}
	handler := NewUserHandler(svc, zap.NewNop())

	c, w := newGinContext(http.MethodPut, "/users/abc", []byte(`{}`))
	c.Params = gin.Params{{Key: "user_id", Value: "abc"}}
	handler.Update(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid user_id", w.Body.String())
	assert.Zero(t, svc.updatedID)
}

func TestUserHandlerAssignRole(t *testing.T) {
	svc := &userServiceMock{}
	handler := NewUserHandler(svc, zap.NewNop())

	c, w := newGinContext(http.MethodPut, "/users/3/sites/2/regions/1", []byte(`{"role":"admin"}`))
	c.Params = gin.Params{{Key: "user_id", Value: "3"}, {Key: "site_id", Value: "2"}, {Key: "region_id", Value: "1"}}
	handler.AssignRole(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, []int64{3, 2, 1}, svc.assigned)
}

func TestUserHandlerHidesInternalErrors(t *testing.T) {
	handler := NewUserHandler(&userServiceMock{err: appErrors.Wrap(errors.New("pq: connection refused"), appErrors.KindInternal, "list users")}, zap.NewNop())

	c, w := newGinContext(http.MethodGet, "/users", nil)
	handler.List(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, appErrors.InternalMessage, w.Body.String())
}

func TestExportHandlerReturnsDownloadPath(t *testing.T) {
	svc := &exportServiceMock{result: &models.ExportResult{DownloadPath: "/exports/abc"}}
	handler := NewExportHandler(svc, zap.NewNop())

	c, w := newGinContext(http.MethodGet, "/users/7/regions/1/sites/2/exports/csv?start_date=2024-03-01&end_date=2024-03-10", nil)
	c.Params = gin.Params{
		{Key: "user_id", Value: "7"}, {Key: "region_id", Value: "1"},
		{Key: "site_id", Value: "2"}, {Key: "format", Value: "csv"},
	}
	handler.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/exports/abc", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, models.ExportRequest{
		UserID: 7, RegionID: 1, SiteID: 2, Format: "csv", StartDate: "2024-03-01", EndDate: "2024-03-10",
	}, svc.req)
}

func TestExportHandlerForbidden(t *testing.T) {
	svc := &exportServiceMock{err: appErrors.Clone(appErrors.ErrForbidden, "Not allowed to export to pdf")}
	handler := NewExportHandler(svc, zap.NewNop())

	c, w := newGinContext(http.MethodGet, "/users/7/regions/1/sites/2/exports/pdf", nil)
	c.Params = gin.Params{
		{Key: "user_id", Value: "7"}, {Key: "region_id", Value: "1"},
		{Key: "site_id", Value: "2"}, {Key: "format", Value: "pdf"},
	}
	handler.Export(c)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not allowed to export to pdf", w.Body.String())
}

func TestExportHandlerRejectsBadRegion(t *testing.T) {
	svc := &exportServiceMock{}
	handler := NewExportHandler(svc, zap.NewNop())

	c, w := newGinContext(http.MethodGet, "/users/7/regions/north/sites/2/exports/csv", nil)
	c.Params = gin.Params{
		{Key: "user_id", Value: "7"}, {Key: "region_id", Value: "north"},
		{Key: "site_id", Value: "2"}, {Key: "format", Value: "csv"},
	}
	handler.Export(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid region_id", w.Body.String())
}

func TestExportHandlerDownloadStreamsFile(t *testing.T) {
	svc := &exportServiceMock{body: "id,name\n1,x\n"}
	handler := NewExportHandler(svc, zap.NewNop())

	c, w := newGinContext(http.MethodGet, "/exports/abc", nil)
	c.Params = gin.Params{{Key: "token", Value: "abc"}}
	handler.Download(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "id,name\n1,x\n", w.Body.String())
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="export-abc.csv"`, w.Header().Get("Content-Disposition"))
	assert.True(t, svc.closed)
}

type recordServiceMock struct {
	recordService
	userID   int64
	recordID int64
}

func (m *recordServiceMock) CreateLab(ctx context.Context, userID, recordID int64, fields models.LabFields) (*models.Lab, error) {
	m.userID, m.recordID = userID, recordID
	return &models.Lab{SubRecord: models.SubRecord{RecordsID: recordID, UserID: userID}, LabFields: fields}, nil
}

func (m *recordServiceMock) FindFollowUps(ctx context.Context, userID, recordID int64) ([]models.FollowUp, error) {
	m.userID, m.recordID = userID, recordID
	return []models.FollowUp{}, nil
}

func TestRecordHandlerCreateLabUsesPathIDs(t *testing.T) {
	svc := &recordServiceMock{}
	handler := NewRecordHandler(svc, zap.NewNop())

	c, w := newGinContext(http.MethodPost, "/users/7/sites/2/regions/1/records/9/labs", []byte(`{"lab_received_by":"tech"}`))
	c.Params = gin.Params{
		{Key: "user_id", Value: "7"}, {Key: "site_id", Value: "2"},
		{Key: "region_id", Value: "1"}, {Key: "record_id", Value: "9"},
	}
	handler.CreateLab(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), svc.userID)
	assert.Equal(t, int64(9), svc.recordID)
	assert.Contains(t, w.Body.String(), `"lab_received_by":"tech"`)
}

func TestRecordHandlerFindFollowUpsRejectsBadSite(t *testing.T) {
	svc := &recordServiceMock{}
	handler := NewRecordHandler(svc, zap.NewNop())

	c, w := newGinContext(http.MethodGet, "/users/7/sites/x/regions/1/records/9/follow_ups", nil)
	c.Params = gin.Params{
		{Key: "user_id", Value: "7"}, {Key: "site_id", Value: "x"},
		{Key: "region_id", Value: "1"}, {Key: "record_id", Value: "9"},
	}
	handler.FindFollowUps(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid site_id", w.Body.String())
	assert.Zero(t, svc.userID)
}

func TestRecordHandlerParsesParamsBeforeTouchingService(t *testing.T) {
	handler := NewRecordHandler(nil, zap.NewNop())

	c, w := newGinContext(http.MethodGet, "/users/1/records/r/specimen_collections", nil)
	c.Params = gin.Params{{Key: "user_id", Value: "1"}, {Key: "record_id", Value: "r"}}
	require.NotPanics(t, func() { handler.FindSpecimenCollections(c) })
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid record_id", w.Body.String())

	c, w = newGinContext(http.MethodPost, "/users/1/sites/2/regions/3/records/r/labs", []byte(`{}`))
	c.Params = gin.Params{
		{Key: "user_id", Value: "1"}, {Key: "site_id", Value: "2"},
		{Key: "region_id", Value: "3"}, {Key: "record_id", Value: "r"},
	}
	require.NotPanics(t, func() { handler.CreateLab(c) })
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid record_id", w.Body.String())
}

func TestHealthHandlerReady(t *testing.T) {
	handler := NewHealthHandler(service.NewMetricsService(), map[string]Pinger{
		"postgres": PingerFunc(func(ctx context.Context) error { return nil }),
		"redis":    PingerFunc(func(ctx context.Context) error { return errors.New("dial tcp: refused") }),
	}, nil)

	c, w := newGinContext(http.MethodGet, "/ready", nil)
	handler.Ready(c)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"unavailable"`)
	assert.Contains(t, w.Body.String(), `"postgres":"ok"`)

	c, w = newGinContext(http.MethodGet, "/health", nil)
	handler.Health(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
