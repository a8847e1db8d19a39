// internal/tests/api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/techvault/techvault-backend/internal/config"
	"github.com/techvault/techvault-backend/internal/models"
	"github.com/techvault/techvault-backend/internal/router"
	"github.com/techvault/techvault-backend/internal/storage"
)

type APITestSuite struct {
	suite.Suite
	store  *storage.MemoryStore
	router *gin.Engine
	reqSeq int
}

func (suite *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *APITestSuite) SetupTest() {
	cfg := &config.Config{
		Environment: "test",
		Storage:     config.StorageConfig{Backend: "memory", Seed: true},
		JWT: config.JWTConfig{
			SecretKey:      "test-secret-key",
			AccessTokenTTL: 1,
		},
	}

	suite.store = storage.NewSeededMemoryStore()

	var err error
	suite.router, err = router.Initialize(suite.store, cfg)
	suite.Require().NoError(err)
}

// request performs one HTTP request against the router. Each request gets
// its own client address so the per-IP rate limiters never interfere.
func (suite *APITestSuite) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}

	req, err := http.NewRequest(method, path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	suite.reqSeq++
	req.RemoteAddr = fmt.Sprintf("10.0.%d.%d:4000", suite.reqSeq/250, suite.reqSeq%250)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	suite.Require().NoError(err)
	return response
}

func (suite *APITestSuite) data(w *httptest.ResponseRecorder) map[string]interface{} {
	response := suite.decode(w)
	suite.Require().True(response["success"].(bool), "expected success envelope, got %s", w.Body.String())
	data, ok := response["data"].(map[string]interface{})
	suite.Require().True(ok, "expected object data, got %s", w.Body.String())
	return data
}

func (suite *APITestSuite) dataList(w *httptest.ResponseRecorder) []interface{} {
	response := suite.decode(w)
	suite.Require().True(response["success"].(bool), "expected success envelope, got %s", w.Body.String())
	if response["data"] == nil {
		return nil
	}
	list, ok := response["data"].([]interface{})
	suite.Require().True(ok, "expected list data, got %s", w.Body.String())
	return list
}

func (suite *APITestSuite) login(email, password string) string {
	w := suite.request("POST", "/api/auth/login", map[string]interface{}{
		"email":    email,
		"password": password,
	}, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	return suite.data(w)["token"].(string)
}

func (suite *APITestSuite) createAdmin(email, password string) {
	_, err := suite.store.CreateUser(&models.User{
		Email:     email,
		Password:  password,
		FirstName: "Store",
		LastName:  "Admin",
		Role:      models.UserRoleAdmin,
	})
	suite.Require().NoError(err)
}

func (suite *APITestSuite) TestHealthCheck() {
	w := suite.request("GET", "/health", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "healthy", suite.decode(w)["status"])
}

func (suite *APITestSuite) TestRegistration() {
	w := suite.request("POST", "/api/auth/register", map[string]interface{}{
		"email":     "jo@example.com",
		"password":  "secret123",
		"firstName": "Jo",
		"lastName":  "Miller",
	}, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data := suite.data(w)
	assert.NotEmpty(suite.T(), data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(suite.T(), "jo@example.com", user["email"])
	assert.NotContains(suite.T(), user, "password")

	// Re-registering the email fails and leaves the first account intact.
	w = suite.request("POST", "/api/auth/register", map[string]interface{}{
		"email":     "jo@example.com",
		"password":  "different1",
		"firstName": "Other",
		"lastName":  "Person",
	}, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	token := suite.login("jo@example.com", "secret123")
	assert.NotEmpty(suite.T(), token)
}

func (suite *APITestSuite) TestLoginRejectsWrongPassword() {
	w := suite.request("POST", "/api/auth/register", map[string]interface{}{
		"email":     "jo@example.com",
		"password":  "secret123",
		"firstName": "Jo",
		"lastName":  "Miller",
	}, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.request("POST", "/api/auth/login", map[string]interface{}{
		"email":    "jo@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.request("POST", "/api/auth/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestProfile() {
	suite.createAdmin("admin@example.com", "admin123")
	token := suite.login("admin@example.com", "admin123")

	w := suite.request("GET", "/api/auth/me", nil, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	user := suite.data(w)["user"].(map[string]interface{})
	assert.Equal(suite.T(), "admin@example.com", user["email"])

	w = suite.request("GET", "/api/auth/me", nil, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestListProducts() {
	w := suite.request("GET", "/api/products", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Len(suite.T(), suite.dataList(w), 6)

	w = suite.request("GET", "/api/products?featured=true", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Len(suite.T(), suite.dataList(w), 3)

	w = suite.request("GET", "/api/products?category=laptops", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Len(suite.T(), suite.dataList(w), 2)

	// Unknown category slugs yield an empty list, not an error.
	w = suite.request("GET", "/api/products?category=appliances", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Empty(suite.T(), suite.dataList(w))

	w = suite.request("GET", "/api/products?search=sony", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	results := suite.dataList(w)
	suite.Require().Len(results, 1)
	assert.Equal(suite.T(), "prod-3", results[0].(map[string]interface{})["id"])
}

func (suite *APITestSuite) TestGetProduct() {
	w := suite.request("GET", "/api/products/prod-3", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "Sony WH-1000XM5", suite.data(w)["name"])

	w = suite.request("GET", "/api/products/prod-999", nil, "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestCartMergeAndRemoval() {
	add := map[string]interface{}{
		"userId":          "user-1",
		"productId":       "prod-3",
		"quantity":        1,
		"selectedOptions": map[string]string{"color": "black"},
	}
	w := suite.request("POST", "/api/cart", add, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	first := suite.data(w)
	itemID := first["id"].(string)

	// Same product and options merge into the existing line.
	add["quantity"] = 2
	w = suite.request("POST", "/api/cart", add, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	merged := suite.data(w)
	assert.Equal(suite.T(), itemID, merged["id"])
	assert.Equal(suite.T(), float64(3), merged["quantity"])

	// Different options start a new line.
	add["selectedOptions"] = map[string]string{"color": "silver"}
	add["quantity"] = 1
	w = suite.request("POST", "/api/cart", add, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.NotEqual(suite.T(), itemID, suite.data(w)["id"])

	w = suite.request("GET", "/api/cart/user-1", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	lines := suite.dataList(w)
	suite.Require().Len(lines, 2)
	product := lines[0].(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(suite.T(), "Sony WH-1000XM5", product["name"])

	// Quantity zero removes the line.
	w = suite.request("PATCH", "/api/cart/"+itemID, map[string]interface{}{"quantity": 0}, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), true, suite.data(w)["removed"])

	w = suite.request("GET", "/api/cart/user-1", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Len(suite.T(), suite.dataList(w), 1)
}

func (suite *APITestSuite) TestCartUnknownItem() {
	w := suite.request("PATCH", "/api/cart/no-such-item", map[string]interface{}{"quantity": 2}, "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = suite.request("DELETE", "/api/cart/no-such-item", nil, "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestClearCart() {
	for _, productID := range []string{"prod-1", "prod-2"} {
		w := suite.request("POST", "/api/cart", map[string]interface{}{
			"userId":    "user-1",
			"productId": productID,
		}, "")
		suite.Require().Equal(http.StatusOK, w.Code)
	}

	w := suite.request("DELETE", "/api/cart/user/user-1", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/api/cart/user-1", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Empty(suite.T(), suite.dataList(w))
}

func (suite *APITestSuite) TestFavorites() {
	add := map[string]interface{}{"userId": "user-1", "productId": "prod-1"}

	w := suite.request("POST", "/api/favorites", add, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	// Inserts are unconditional, so a repeat add duplicates the entry.
	w = suite.request("POST", "/api/favorites", add, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.request("GET", "/api/favorites/user-1", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	favorites := suite.dataList(w)
	suite.Require().Len(favorites, 2)
	product := favorites[0].(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(suite.T(), "prod-1", product["id"])

	w = suite.request("DELETE", "/api/favorites/user-1/prod-1", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	w = suite.request("DELETE", "/api/favorites/user-1/prod-1", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("DELETE", "/api/favorites/user-1/prod-1", nil, "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestOrders() {
	w := suite.request("POST", "/api/orders", map[string]interface{}{
		"userId":    "user-1",
		"total":     "431.92",
		"email":     "jo@example.com",
		"firstName": "Jo",
		"lastName":  "Miller",
		"address":   "1 Main St",
		"city":      "Springfield",
		"zipCode":   "12345",
		"items": []map[string]interface{}{
			{"productId": "prod-3", "quantity": 1, "price": "399.00"},
		},
	}, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	order := suite.data(w)
	orderID := order["id"].(string)
	assert.Equal(suite.T(), "pending", order["status"])

	w = suite.request("GET", "/api/orders/user-1", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Len(suite.T(), suite.dataList(w), 1)

	w = suite.request("GET", "/api/orders/user-1/"+orderID+"/items", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	items := suite.dataList(w)
	suite.Require().Len(items, 1)
	assert.Equal(suite.T(), "399.00", items[0].(map[string]interface{})["price"])

	// Another user cannot read the order's items.
	w = suite.request("GET", "/api/orders/user-2/"+orderID+"/items", nil, "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestAdminGating() {
	suite.createAdmin("admin@example.com", "admin123")

	w := suite.request("POST", "/api/auth/register", map[string]interface{}{
		"email":     "jo@example.com",
		"password":  "secret123",
		"firstName": "Jo",
		"lastName":  "Miller",
	}, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	newProduct := map[string]interface{}{
		"name":        "USB-C Dock",
		"description": "Eleven port docking station",
		"price":       "149.00",
		"categoryId":  "cat-3",
	}

	w = suite.request("POST", "/api/products", newProduct, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	customerToken := suite.login("jo@example.com", "secret123")
	w = suite.request("POST", "/api/products", newProduct, customerToken)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	adminToken := suite.login("admin@example.com", "admin123")
	w = suite.request("POST", "/api/products", newProduct, adminToken)
	assert.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(suite.T(), "USB-C Dock", suite.data(w)["name"])

	w = suite.request("GET", "/api/products", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Len(suite.T(), suite.dataList(w), 7)
}

func (suite *APITestSuite) TestUserAdministration() {
	suite.createAdmin("admin@example.com", "admin123")
	adminToken := suite.login("admin@example.com", "admin123")

	w := suite.request("POST", "/api/auth/register", map[string]interface{}{
		"email":     "jo@example.com",
		"password":  "secret123",
		"firstName": "Jo",
		"lastName":  "Miller",
	}, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	user := suite.data(w)["user"].(map[string]interface{})

	w = suite.request("GET", "/api/users", nil, adminToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	users := suite.dataList(w)
	assert.Len(suite.T(), users, 2)
	for _, u := range users {
		assert.NotContains(suite.T(), u.(map[string]interface{}), "password")
	}

	w = suite.request("DELETE", "/api/users/"+user["id"].(string), nil, adminToken)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("DELETE", "/api/users/"+user["id"].(string), nil, adminToken)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = suite.request("GET", "/api/users", nil, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestCreateCategory() {
	suite.createAdmin("admin@example.com", "admin123")
	adminToken := suite.login("admin@example.com", "admin123")

	w := suite.request("POST", "/api/categories", map[string]interface{}{
		"name":        "Wearables",
		"slug":        "wearables",
		"description": "Watches and fitness bands",
	}, adminToken)
	assert.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	w = suite.request("GET", "/api/categories", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Len(suite.T(), suite.dataList(w), 4)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
