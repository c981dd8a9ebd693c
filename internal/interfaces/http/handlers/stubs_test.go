package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"fundilink.backend/internal/domain/entities"
	"fundilink.backend/internal/interfaces/http/middleware"
	"fundilink.backend/pkg/redis"
	"fundilink.backend/pkg/utils"
)

type fundiServiceStub struct {
	applyFn       func(context.Context, uuid.UUID, *entities.ApplyFundiInput) (*entities.ActionResponse, error)
	decideFn      func(context.Context, string, string) (*entities.ActionResponse, error)
	listPendingFn func(context.Context) ([]*entities.FundiWithRelations, error)
	listAllFn     func(context.Context) ([]*entities.FundiWithRelations, error)
	getStatusFn   func(context.Context, uuid.UUID) (*entities.FundiStatusResponse, error)
}

func (s *fundiServiceStub) Apply(ctx context.Context, userID uuid.UUID, input *entities.ApplyFundiInput) (*entities.ActionResponse, error) {
	return s.applyFn(ctx, userID, input)
}
func (s *fundiServiceStub) Decide(ctx context.Context, id, status string) (*entities.ActionResponse, error) {
	return s.decideFn(ctx, id, status)
}
func (s *fundiServiceStub) ListPending(ctx context.Context) ([]*entities.FundiWithRelations, error) {
	return s.listPendingFn(ctx)
}
func (s *fundiServiceStub) ListAll(ctx context.Context) ([]*entities.FundiWithRelations, error) {
	return s.listAllFn(ctx)
}
func (s *fundiServiceStub) GetStatus(ctx context.Context, userID uuid.UUID) (*entities.FundiStatusResponse, error) {
	return s.getStatusFn(ctx, userID)
}

type authServiceStub struct {
	signUpFn  func(context.Context, *entities.SignUpInput) (*entities.User, error)
	signInFn  func(context.Context, *entities.SignInInput) (*entities.AuthResponse, error)
	refreshFn func(context.Context, string) (*entities.AuthResponse, error)
	getUserFn func(context.Context, uuid.UUID) (*entities.User, error)
}

func (s *authServiceStub) SignUp(ctx context.Context, input *entities.SignUpInput) (*entities.User, error) {
	return s.signUpFn(ctx, input)
}
func (s *authServiceStub) SignIn(ctx context.Context, input *entities.SignInInput) (*entities.AuthResponse, error) {
	return s.signInFn(ctx, input)
}
func (s *authServiceStub) Refresh(ctx context.Context, token string) (*entities.AuthResponse, error) {
	return s.refreshFn(ctx, token)
}
func (s *authServiceStub) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.getUserFn(ctx, id)
}
func (s *authServiceStub) RefreshExpiry() time.Duration { return time.Hour }

type sessionStoreStub struct {
	created map[string]*redis.SessionData
	deleted []string
	err     error
}

func (s *sessionStoreStub) CreateSession(_ context.Context, id string, data *redis.SessionData, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	if s.created == nil {
		s.created = map[string]*redis.SessionData{}
	}
	s.created[id] = data
	return nil
}

func (s *sessionStoreStub) DeleteSession(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

type catalogServiceStub struct {
	createServiceFn  func(context.Context, *entities.CatalogNameInput) (*entities.Service, error)
	listServicesFn   func(context.Context) ([]*entities.Service, error)
	getServiceFn     func(context.Context, uuid.UUID) (*entities.Service, error)
	renameServiceFn  func(context.Context, uuid.UUID, *entities.CatalogNameInput) (*entities.Service, error)
	createLocationFn func(context.Context, *entities.CatalogNameInput) (*entities.Location, error)
	listLocationsFn  func(context.Context) ([]*entities.Location, error)
	getLocationFn    func(context.Context, uuid.UUID) (*entities.Location, error)
}

func (s *catalogServiceStub) CreateService(ctx context.Context, in *entities.CatalogNameInput) (*entities.Service, error) {
	return s.createServiceFn(ctx, in)
}
func (s *catalogServiceStub) ListServices(ctx context.Context) ([]*entities.Service, error) {
	return s.listServicesFn(ctx)
}
func (s *catalogServiceStub) GetService(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	return s.getServiceFn(ctx, id)
}
func (s *catalogServiceStub) RenameService(ctx context.Context, id uuid.UUID, in *entities.CatalogNameInput) (*entities.Service, error) {
	return s.renameServiceFn(ctx, id, in)
}
func (s *catalogServiceStub) CreateLocation(ctx context.Context, in *entities.CatalogNameInput) (*entities.Location, error) {
	return s.createLocationFn(ctx, in)
}
func (s *catalogServiceStub) ListLocations(ctx context.Context) ([]*entities.Location, error) {
	return s.listLocationsFn(ctx)
}
func (s *catalogServiceStub) GetLocation(ctx context.Context, id uuid.UUID) (*entities.Location, error) {
	return s.getLocationFn(ctx, id)
}

type adminServiceStub struct {
	listUsersFn func(context.Context, string, int, int) ([]*entities.User, utils.PaginationMeta, error)
	statsFn     func(context.Context) (*entities.AdminStats, error)
}

func (s *adminServiceStub) ListUsers(ctx context.Context, search string, page, limit int) ([]*entities.User, utils.PaginationMeta, error) {
	return s.listUsersFn(ctx, search, page, limit)
}
func (s *adminServiceStub) Stats(ctx context.Context) (*entities.AdminStats, error) {
	return s.statsFn(ctx)
}

// newTestRouter returns a router that authenticates every request as userID when it is not nil.
func newTestRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != uuid.Nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.UserIDKey, userID)
			c.Next()
		})
	}
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(v)
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
