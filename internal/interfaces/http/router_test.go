package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiendapyme-api/internal/application/auth"
	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/superadmin"
	"github.com/jhoicas/tiendapyme-api/internal/application/usecase"
	"github.com/jhoicas/tiendapyme-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/tiendapyme-api/internal/interfaces/http"
	"github.com/jhoicas/tiendapyme-api/pkg/logger"
)

type testServer struct {
	app     *fiber.App
	backups *superadmin.BackupUseCase
}

// newTestServer arma la API completa sobre repositorios en memoria.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := memory.NewDB()
	users := memory.NewUserRepository(db)
	stores := memory.NewStoreRepository(db)
	products := memory.NewProductRepository(db)
	carts := memory.NewCartRepository(db)
	orders := memory.NewOrderRepository(db)
	settings := memory.NewSettingsRepository(db)
	plans := memory.NewPlanRepository(db)
	providers := memory.NewAIProviderRepository(db)
	messages := memory.NewAdminMessageRepository(db)
	backupLogs := memory.NewBackupLogRepository(db)
	tx := memory.NewTxRunner(db)
	log := logger.Nop()

	storeUC := usecase.NewStoreUseCase(stores, settings, tx)
	backups := superadmin.NewBackupUseCase(backupLogs, memory.NewBackupExporter(db), t.TempDir(), log)
	t.Cleanup(backups.Wait)

	app := apphttp.NewApp(apphttp.ServerConfig{AppName: "tiendapyme-test"}, log)
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(users, stores, tx, auth.JWTConfig{Secret: testJWTSecret, TTL: time.Hour, Issuer: testIssuer}),
		ProductUC: usecase.NewProductUseCase(products, stores, users, plans, tx),
		StoreUC:   storeUC,
		CartUC:    usecase.NewCartUseCase(carts, "http://localhost:3000"),
		OrderUC:   usecase.NewOrderUseCase(orders, products, storeUC, tx, nil),
		AIUC:      usecase.NewAIUseCase(providers, nil, nil),
		Accounts:  superadmin.NewAccountUseCase(users, plans, tx),
		Plans:     superadmin.NewPlanUseCase(plans),
		Providers: superadmin.NewProviderUseCase(providers, tx),
		Messages:  superadmin.NewMessageUseCase(messages, users, nil, log),
		Backups:   backups,
		Stores:    stores,
		JWTSecret: testJWTSecret,
	})
	return &testServer{app: app, backups: backups}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func (s *testServer) register(t *testing.T, email string) string {
	t.Helper()
	resp, body := s.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Name: "Ana", Email: email, Password: "secreto1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return "Bearer " + out.Token
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)
	resp, body := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRouter_RutaInexistente404JSON(t *testing.T) {
	s := newTestServer(t)
	resp, body := s.do(t, http.MethodGet, "/api/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestRouter_RegistroDuplicado400(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "ana@tienda.co")

	resp, body := s.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Email: "ANA@tienda.co", Password: "otraclave"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "EMAIL_EXISTS")
}

func TestRouter_LoginClaveIncorrecta401(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "ana@tienda.co")

	wrong, wrongBody := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@tienda.co", Password: "nope"})
	unknown, unknownBody := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "nadie@tienda.co", Password: "nope"})

	assert.Equal(t, http.StatusUnauthorized, wrong.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknown.StatusCode)
	assert.JSONEq(t, string(wrongBody), string(unknownBody), "el mensaje no debe revelar si el email existe")
}

func TestRouter_MeDevuelvePantallaOnboarding(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ana@tienda.co")

	resp, body := s.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me dto.MeResponse
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, "sme", me.Role)
	assert.Equal(t, "onboardingStep1", me.Screen)
	assert.NotEmpty(t, me.StoreID)
}

func TestRouter_SMENoEntraASuperadmin(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ana@tienda.co")

	for _, path := range []string{"/api/superadmin/accounts", "/api/superadmin/plans", "/api/superadmin/backups/logs"} {
		resp, _ := s.do(t, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
	}
}

func TestRouter_SuperadminSinTiendaNoEntraAProductos(t *testing.T) {
	s := newTestServer(t)
	resp, _ := s.do(t, http.MethodGet, "/api/products", tokenForRole(t, "superadmin"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_TokenDeTiendaEliminada403(t *testing.T) {
	s := newTestServer(t)
	resp, body := s.do(t, http.MethodGet, "/api/products", tokenForRole(t, "sme"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(body), "STORE_NOT_FOUND")
}

func TestRouter_FlujoProductoYCarrito(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ana@tienda.co")

	resp, body := s.do(t, http.MethodPost, "/api/products", token, dto.ProductRequest{Name: "Vela de soya", Price: "15000"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var p dto.ProductResponse
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, "Activo", p.Status)

	resp, body = s.do(t, http.MethodPost, "/api/cart", token, fiber.Map{
		"items": []fiber.Map{{"productId": p.ID, "name": p.Name, "price": p.Price, "quantity": 2}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.do(t, http.MethodPost, "/api/cart/share", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var share dto.CartShareResponse
	require.NoError(t, json.Unmarshal(body, &share))
	assert.NotEmpty(t, share.Code)
	assert.Contains(t, share.URL, "http://localhost:3000")

	resp, _ = s.do(t, http.MethodPost, "/api/cart/import", token, dto.CartImportRequest{Code: "%%%"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_IASinProveedor503(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ana@tienda.co")

	resp, body := s.do(t, http.MethodPost, "/api/ai/generate-marketing-content", token, dto.MarketingContentRequest{Prompt: "idea para instagram"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(body), "AI_UNAVAILABLE")
}

func TestRouter_SesionPublica(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/session/screen", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"screen":"landing"}`, string(body))

	resp, body = s.do(t, http.MethodPost, "/api/session/navigate", "", dto.NavigateRequest{Current: "landing", Action: "toLogin"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"screen":"login"}`, string(body))
}

func TestRouter_SuperadminCreaCuentaYRespaldo(t *testing.T) {
	s := newTestServer(t)
	admin := tokenForRole(t, "superadmin")

	resp, body := s.do(t, http.MethodPost, "/api/superadmin/accounts", admin, dto.AccountRequest{Name: "Panadería Luz", Email: "luz@pan.co"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, _ = s.do(t, http.MethodPost, "/api/superadmin/accounts", admin, dto.AccountRequest{Name: "Otra", Email: "luz@pan.co"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = s.do(t, http.MethodPost, "/api/superadmin/backups/create", admin, dto.BackupRequest{Type: "full_system"})
	require.Equal(t, http.StatusAccepted, resp.StatusCode, string(body))
	s.backups.Wait()

	resp, body = s.do(t, http.MethodGet, "/api/superadmin/backups/logs", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"completed"`)
}

func TestRouter_RutaApiDesconocidaSinToken404(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/api/nope", "/api/superadmin/nope"} {
		resp, body := s.do(t, http.MethodGet, path, "", nil)
		if path == "/api/superadmin/nope" {
			// el grupo superadmin exige token antes de resolver la ruta
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
			continue
		}
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Contains(t, string(body), "NOT_FOUND", path)
	}
}

func TestRouter_SuperadminListaPlanes(t *testing.T) {
	s := newTestServer(t)
	admin := tokenForRole(t, "superadmin")

	for _, path := range []string{"/api/superadmin/plans", "/api/superadmin/accounts", "/api/superadmin/ai-providers", "/api/superadmin/messages"} {
		resp, body := s.do(t, http.MethodGet, path, admin, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "%s: %s", path, body)
	}
}

func TestRouter_CheckoutConMedioSimulado(t *testing.T) {
	cases := []struct {
		name     string
		settings fiber.Map
		method   string
	}{
		{"stripe", fiber.Map{"stripeApiKeyMock": "pk_test"}, "stripeMock"},
		{"paypal", fiber.Map{"paypalEmailMock": "pagos@tienda.co"}, "paypalMock"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			token := s.register(t, "ana@tienda.co")

			resp, body := s.do(t, http.MethodPut, "/api/settings/business", token, tc.settings)
			require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
			resp, body = s.do(t, http.MethodPost, "/api/cart", token, fiber.Map{
				"items": []fiber.Map{{"productId": "p-1", "name": "Vela", "price": "15000", "quantity": 1}},
			})
			require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

			resp, body = s.do(t, http.MethodPost, "/api/orders/checkout", token, dto.CheckoutRequest{})
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "sin medio de pago: %s", body)

			resp, body = s.do(t, http.MethodPost, "/api/orders/checkout", token, dto.CheckoutRequest{PaymentMethod: tc.method})
			require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
			var out dto.CheckoutResponse
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Len(t, out.Order.Items, 1)
			assert.Contains(t, out.Message, "(Simulado)")
		})
	}
}
