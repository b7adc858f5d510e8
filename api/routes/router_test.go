package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/royalstarlog/freightdesk-backend/internal/agents"
	authsvc "github.com/royalstarlog/freightdesk-backend/internal/auth"
	"github.com/royalstarlog/freightdesk-backend/internal/carriers"
	"github.com/royalstarlog/freightdesk-backend/internal/documents"
	"github.com/royalstarlog/freightdesk-backend/internal/files"
	"github.com/royalstarlog/freightdesk-backend/internal/loads"
	"github.com/royalstarlog/freightdesk-backend/internal/rateconfirmations"
	"github.com/royalstarlog/freightdesk-backend/internal/shippers"
	pkgauth "github.com/royalstarlog/freightdesk-backend/pkg/auth"
	"github.com/royalstarlog/freightdesk-backend/pkg/config"
	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
	"github.com/royalstarlog/freightdesk-backend/pkg/logger"
	"github.com/royalstarlog/freightdesk-backend/pkg/security"
)

type stubPinger struct{}

func (stubPinger) Ping(ctx context.Context) error { return nil }

type stubSessions struct{}

func (stubSessions) Start(ctx context.Context, accessID, email string) error { return nil }

func (stubSessions) Revoke(ctx context.Context, accessID string) error { return nil }

func (stubSessions) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

func routerTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "router-test-secret",
			Issuer:            "freightdesk",
			ExpirationMinutes: 30,
			SessionTTLMinutes: 30,
		},
		Password: config.PasswordConfig{
			ArgonMemoryKB:    8192,
			ArgonTime:        1,
			ArgonParallelism: 1,
			ArgonSaltLen:     16,
			ArgonKeyLen:      32,
		},
		Storage: config.StorageConfig{MaxUploadMB: 5},
	}
}

func setupRouter(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()

	cfg := routerTestConfig()
	logg := logger.New(logger.Options{ServiceName: "router-test"})

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "router.db")), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&models.Agent{},
		&models.Load{},
		&models.Shipper{},
		&models.Carrier{},
		&models.RateConfirmation{},
	))

	hash, err := security.HashPassword("dispatch-pass", cfg.Password)
	require.NoError(t, err)

	sessions := stubSessions{}
	authService, err := authsvc.NewService(
		config.AuthConfig{Users: "ops@freightdesk.test:" + hash},
		cfg.JWT,
		sessions,
	)
	require.NoError(t, err)

	docStore, err := documents.NewStore(t.TempDir())
	require.NoError(t, err)
	fileManager, err := files.NewManager(t.TempDir())
	require.NoError(t, err)

	agentService, err := agents.NewService(agents.NewRepository(conn))
	require.NoError(t, err)
	loadService, err := loads.NewService(loads.NewRepository(conn), docStore, logg)
	require.NoError(t, err)
	shipperService, err := shippers.NewService(shippers.NewRepository(conn))
	require.NoError(t, err)
	carrierService, err := carriers.NewService(carriers.NewRepository(conn), fileManager, "/uploads", logg)
	require.NoError(t, err)
	rateConService, err := rateconfirmations.NewService(
		rateconfirmations.NewRepository(conn),
		documents.NewPDFConverter(),
		docStore,
	)
	require.NoError(t, err)

	router := NewRouter(Deps{
		Config:         cfg,
		Logger:         logg,
		DB:             stubPinger{},
		Sessions:       sessions,
		AuthService:    authService,
		AgentService:   agentService,
		LoadService:    loadService,
		ShipperService: shipperService,
		CarrierService: carrierService,
		RateConService: rateConService,
	})
	return router, cfg
}

func mintToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), pkgauth.AccessTokenPayload{Email: "ops@freightdesk.test"})
	require.NoError(t, err)
	return token
}

func authedRequest(t *testing.T, cfg *config.Config, method, target string, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+mintToken(t, cfg))
	return req
}

func TestRouterLoadLifecycle(t *testing.T) {
	router, cfg := setupRouter(t)

	payload := []byte(`{
		"load_no": "L100",
		"customer": "Acme Freight",
		"pick_up_count": 1,
		"drop_off_count": 1,
		"load_status": "open",
		"pick_ups": [{"address": "1 Main St", "city": "Reno"}],
		"drop_offs": [{"address": "2 Oak Ave", "city": "Tulsa"}]
	}`)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, cfg, http.MethodPost, "/api/v1/loads", payload))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, cfg, http.MethodGet, "/api/v1/loads?load_no=L100", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			LoadNo   string `json:"load_no"`
			Customer string `json:"customer"`
			PickUps  []struct {
				Address string `json:"address"`
				City    string `json:"city"`
			} `json:"pick_ups"`
			DropOffs []struct {
				Address string `json:"address"`
				City    string `json:"city"`
			} `json:"drop_offs"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "L100", envelope.Data.LoadNo)
	assert.Equal(t, "Acme Freight", envelope.Data.Customer)
	require.Len(t, envelope.Data.PickUps, 1)
	require.Len(t, envelope.Data.DropOffs, 1)
	assert.Equal(t, "Reno", envelope.Data.PickUps[0].City)
	assert.Equal(t, "2 Oak Ave", envelope.Data.DropOffs[0].Address)
}

func TestRouterLoginIssuesToken(t *testing.T) {
	router, _ := setupRouter(t)

	body := []byte(`{"email": "ops@freightdesk.test", "password": "dispatch-pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			Token string `json:"token"`
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.Token)
	assert.Equal(t, "ops@freightdesk.test", envelope.Data.Email)
}

func TestRouterRejectsUnauthenticated(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agents", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouterHealthLive(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
