package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/mykafka"
	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/service"
	"github.com/Skotchmaster/marketplace/internal/tokens"
	"github.com/Skotchmaster/marketplace/internal/transport"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	Repo   *repo.GormRepo
	Secret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	store := &repo.GormRepo{DB: db}
	secret := []byte("test-jwt-secret")
	producer := &mykafka.Producer{}

	e := echo.New()
	Register(e, &Deps{
		UserHandler: &UserHandler{
			Users:    &service.UserService{Repo: store, JWTSecret: secret},
			Producer: producer,
		},
		ProductHandler: &ProductHandler{
			Products: &service.ProductService{Repo: store},
			Producer: producer,
		},
		JWTSecret: secret,
	})

	return &testEnv{T: t, E: e, Repo: store, Secret: secret}
}

// do runs a request through the full router, middleware included, and
// decodes the envelope.
func (env *testEnv) do(method, path string, body interface{}, token string) (*httptest.ResponseRecorder, transport.Envelope) {
	env.T.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)

	var env2 transport.Envelope
	if rec.Body.Len() > 0 {
		require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &env2))
	}
	return rec, env2
}

// register creates an account through the endpoint and returns a login token.
func (env *testEnv) register(name, email, password string) (uint, string) {
	env.T.Helper()

	rec, _ := env.do(http.MethodPost, "/api/users/register", map[string]string{
		"name": name, "email": email, "password": password,
	}, "")
	require.Equal(env.T, http.StatusCreated, rec.Code)

	rec, body := env.do(http.MethodPost, "/api/users/login", map[string]string{
		"email": email, "password": password,
	}, "")
	require.Equal(env.T, http.StatusOK, rec.Code)

	data := body.Data.(map[string]interface{})
	user := data["user"].(map[string]interface{})
	return uint(user["id"].(float64)), data["token"].(string)
}

// adminToken seeds an admin row directly and signs a token for it.
func (env *testEnv) adminToken() (uint, string) {
	env.T.Helper()

	admin := models.User{
		Name:         "Admin User",
		Email:        "admin@example.com",
		PasswordHash: "x",
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
	}
	require.NoError(env.T, env.Repo.DB.Create(&admin).Error)

	token, err := tokens.Sign(admin.ID, admin.Email, admin.Role, env.Secret)
	require.NoError(env.T, err)
	return admin.ID, token
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func dataMap(t *testing.T, body transport.Envelope) map[string]interface{} {
	t.Helper()
	m, ok := body.Data.(map[string]interface{})
	require.True(t, ok, "expected object data, got %T", body.Data)
	return m
}

func dataList(t *testing.T, body transport.Envelope) []interface{} {
	t.Helper()
	if body.Data == nil {
		return nil
	}
	l, ok := body.Data.([]interface{})
	require.True(t, ok, "expected array data, got %T", body.Data)
	return l
}
