package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hqv2816/storefront-api/configs"
	httpadapter "github.com/hqv2816/storefront-api/internal/adapter/http"
	"github.com/hqv2816/storefront-api/internal/adapter/http/middleware"
	"github.com/hqv2816/storefront-api/internal/adapter/memory"
	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/logging"
	"github.com/hqv2816/storefront-api/internal/security"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logging.Init("test", filepath.Join(os.TempDir(), "storefront-test.log"), "error")
	os.Exit(m.Run())
}

type fixture struct {
	router   *gin.Engine
	products *memory.ProductRepo
	orders   *memory.OrderRepo
	users    *memory.UserRepo
	tokens   *security.TokenService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	var cfg configs.Config
	cfg.Security.JWTSecret = "test-secret"
	cfg.Security.Issuer = "storefront-api"
	cfg.Security.Audience = "storefront-clients"
	cfg.Security.TTL = time.Hour

	products := memory.NewProductRepo()
	orders := memory.NewOrderRepo()
	users := memory.NewUserRepo()
	tokens := security.NewTokenService(cfg)
	auth := security.NewLocalAuthService(tokens, users, users)

	ph := httpadapter.NewProductHandler(usecase.NewCreateProduct(products), products)
	oh := httpadapter.NewOrderHandler(
		usecase.NewCreateOrder(products, orders, nil),
		usecase.NewUpdateOrderStatus(orders, nil),
		orders,
	)
	ah := httpadapter.NewAuthHandler(
		usecase.NewAuthenticateUser(users, auth),
		usecase.NewRegisterUser(users),
		auth,
	)

	return &fixture{
		router:   httpadapter.NewRouter(ph, oh, ah, middleware.NewAuthz(tokens)),
		products: products,
		orders:   orders,
		users:    users,
		tokens:   tokens,
	}
}

func (f *fixture) addUser(t *testing.T, id, email string, role domain.Role) string {
	t.Helper()
	e, err := domain.NewEmail(email)
	if err != nil {
		t.Fatal(err)
	}
	pw, err := domain.NewPassword("s3cret-enough")
	if err != nil {
		t.Fatal(err)
	}
	u := domain.NewUser(id, e, "Test", role)
	if err := f.users.Create(context.Background(), u, pw); err != nil {
		t.Fatal(err)
	}
	token, err := f.tokens.Issue(u)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func (f *fixture) addProduct(t *testing.T, id string, cents int64, stock int) {
	t.Helper()
	price, err := domain.NewMoney(cents, "USD")
	if err != nil {
		t.Fatal(err)
	}
	p, err := domain.NewProduct(domain.ProductID(id), "product "+id, price, stock)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.products.Save(context.Background(), p); err != nil {
		t.Fatal(err)
	}
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/v1/users", "", gin.H{
		"email": "ana@example.com", "name": "Ana", "password": "s3cret-enough",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body)
	}

	w = f.do(t, http.MethodPost, "/v1/login", "", gin.H{
		"email": "ana@example.com", "password": "s3cret-enough",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || out.Token == "" {
		t.Fatalf("login body %s", w.Body)
	}

	// token works against /me
	w = f.do(t, http.MethodGet, "/v1/me", out.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d, body %s", w.Code, w.Body)
	}
}

func TestLoginUnknownEmailReadsAsBadCredentials(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/v1/login", "", gin.H{
		"email": "ghost@example.com", "password": "whatever-pw",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestCreateOrderFlow(t *testing.T) {
	f := newFixture(t)
	token := f.addUser(t, "c1", "ana@example.com", domain.RoleCustomer)
	f.addProduct(t, "p1", 1000, 5)

	w := f.do(t, http.MethodPost, "/v1/orders", token, gin.H{
		"items": []gin.H{{"productId": "p1", "quantity": 2}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}

	var resp struct {
		ID          string `json:"id"`
		Status      string `json:"status"`
		TotalAmount struct {
			Cents int64 `json:"cents"`
		} `json:"totalAmount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "PENDING" || resp.TotalAmount.Cents != 2000 {
		t.Fatalf("order = %+v", resp)
	}

	// the owner can read it back
	w = f.do(t, http.MethodGet, "/v1/orders/"+resp.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	// another customer cannot even see it exists
	other := f.addUser(t, "c2", "bob@example.com", domain.RoleCustomer)
	w = f.do(t, http.MethodGet, "/v1/orders/"+resp.ID, other, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("cross-customer get status = %d, want 404", w.Code)
	}

	// the owner may cancel
	w = f.do(t, http.MethodPost, "/v1/orders/"+resp.ID+"/cancel", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel status = %d, body %s", w.Code, w.Body)
	}
}

func TestCreateOrderInsufficientStockConflict(t *testing.T) {
	f := newFixture(t)
	token := f.addUser(t, "c1", "ana@example.com", domain.RoleCustomer)
	f.addProduct(t, "p1", 1000, 1)

	w := f.do(t, http.MethodPost, "/v1/orders", token, gin.H{
		"items": []gin.H{{"productId": "p1", "quantity": 2}},
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409, body %s", w.Code, w.Body)
	}
}

func TestCreateOrderRejectsBadPayload(t *testing.T) {
	f := newFixture(t)
	token := f.addUser(t, "c1", "ana@example.com", domain.RoleCustomer)

	// no items
	w := f.do(t, http.MethodPost, "/v1/orders", token, gin.H{"items": []gin.H{}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	// duplicate product lines
	w = f.do(t, http.MethodPost, "/v1/orders", token, gin.H{
		"items": []gin.H{
			{"productId": "p1", "quantity": 1},
			{"productId": "p1", "quantity": 2},
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestOrderEndpointsRequireAuth(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/v1/orders", "", gin.H{
		"items": []gin.H{{"productId": "p1", "quantity": 1}},
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAdminOnlyTransitions(t *testing.T) {
	f := newFixture(t)
	customer := f.addUser(t, "c1", "ana@example.com", domain.RoleCustomer)
	admin := f.addUser(t, "a1", "admin@example.com", domain.RoleAdmin)
	f.addProduct(t, "p1", 1000, 5)

	w := f.do(t, http.MethodPost, "/v1/orders", customer, gin.H{
		"items": []gin.H{{"productId": "p1", "quantity": 1}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}
	var resp struct {
		ID string `json:"id"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	w = f.do(t, http.MethodPost, "/v1/orders/"+resp.ID+"/process", customer, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("customer process status = %d, want 403", w.Code)
	}

	w = f.do(t, http.MethodPost, "/v1/orders/"+resp.ID+"/process", admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin process status = %d, body %s", w.Code, w.Body)
	}
	w = f.do(t, http.MethodPost, "/v1/orders/"+resp.ID+"/complete", admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin complete status = %d", w.Code)
	}

	// completed orders cannot be cancelled
	w = f.do(t, http.MethodPost, "/v1/orders/"+resp.ID+"/cancel", customer, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("cancel completed status = %d, want 422", w.Code)
	}
}

func TestProductEndpoints(t *testing.T) {
	f := newFixture(t)
	admin := f.addUser(t, "a1", "admin@example.com", domain.RoleAdmin)
	customer := f.addUser(t, "c1", "ana@example.com", domain.RoleCustomer)

	body := gin.H{
		"name":  "Keyboard",
		"price": gin.H{"cents": 4999, "currency": "USD"},
		"stock": 10,
	}

	w := f.do(t, http.MethodPost, "/v1/products", customer, body)
	if w.Code != http.StatusForbidden {
		t.Fatalf("customer create status = %d, want 403", w.Code)
	}

	w = f.do(t, http.MethodPost, "/v1/products", admin, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("admin create status = %d, body %s", w.Code, w.Body)
	}

	// listing is public
	w = f.do(t, http.MethodGet, "/v1/products", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 1 {
		t.Fatalf("list body %s", w.Body)
	}

	w = f.do(t, http.MethodGet, "/v1/products/ghost", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing product status = %d, want 404", w.Code)
	}
}
