package orderControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	orderControllers "github.com/graniti123/stylehub/controllers/order"
	"github.com/graniti123/stylehub/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.POST("/api/orders", orderControllers.CreateOrder(db))
	r.GET("/api/orders", orderControllers.GetOrdersBySession(db))
	r.GET("/api/orders/:id", orderControllers.GetOrder(db))
	return r
}

func perform(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func fillCart(t *testing.T, db *gorm.DB, sessionID string) (models.Product, models.Product) {
	t.Helper()
	dress := models.Product{
		ID: uuid.NewString(), Name: "Elegantes Sommerkleid", Price: 89.99, Image: "dress.jpg",
		Category: "damen", Sizes: []string{"S", "M", "L"}, Colors: []string{"Weiß"},
	}
	socks := models.Product{
		ID: uuid.NewString(), Name: "Socken", Price: 9.99, Image: "socks.jpg",
		Category: "accessoires", Sizes: []string{"Einheitsgröße"}, Colors: []string{"Schwarz"},
	}
	require.NoError(t, db.Create(&dress).Error)
	require.NoError(t, db.Create(&socks).Error)

	now := time.Now()
	require.NoError(t, db.Create(&models.CartItem{
		ID: uuid.NewString(), SessionID: sessionID, ProductID: dress.ID,
		SelectedSize: "M", SelectedColor: "Weiß", Quantity: 2, AddedAt: now,
	}).Error)
	require.NoError(t, db.Create(&models.CartItem{
		ID: uuid.NewString(), SessionID: sessionID, ProductID: socks.ID,
		SelectedSize: "Einheitsgröße", SelectedColor: "Schwarz", Quantity: 1, AddedAt: now.Add(time.Second),
	}).Error)
	return dress, socks
}

var customer = gin.H{
	"name":    "Erika Mustermann",
	"email":   "erika@example.com",
	"address": "Musterstraße 1, 10115 Berlin",
}

func TestCreateOrderSnapshotsCartAndClearsIt(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	dress, _ := fillCart(t, db, "s1")

	w := perform(r, http.MethodPost, "/api/orders", gin.H{"session_id": "s1", "customer_info": customer})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Order models.Order `json:"order"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	order := resp.Data.Order

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Elegantes Sommerkleid", order.Items[0].ProductName)
	assert.Equal(t, 89.99, order.Items[0].PriceAtTime)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// 2 x 89.99 + 9.99 = 189.97, over the free shipping threshold.
	assert.Equal(t, 0.0, order.ShippingCost)
	assert.Equal(t, 189.97, order.TotalAmount)
	assert.Equal(t, "created", order.Status)
	assert.Equal(t, "Erika Mustermann", order.Customer.Name)

	// The cart is emptied in the same transaction.
	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("session_id = ?", "s1").Count(&remaining).Error)
	assert.Zero(t, remaining)

	// Later price edits do not touch the snapshot.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", dress.ID).Update("price", 129.99).Error)
	w = perform(r, http.MethodGet, "/api/orders/"+order.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 89.99, resp.Data.Order.Items[0].PriceAtTime)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := perform(r, http.MethodPost, "/api/orders", gin.H{"session_id": "s-empty", "customer_info": customer})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No items in cart")
}

func TestCreateOrderMissingSession(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := perform(r, http.MethodPost, "/api/orders", gin.H{"customer_info": customer})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderNotFound(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := perform(r, http.MethodGet, "/api/orders/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrdersBySession(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	fillCart(t, db, "s1")

	w := perform(r, http.MethodPost, "/api/orders", gin.H{"session_id": "s1", "customer_info": customer})
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(r, http.MethodGet, "/api/orders?session_id=s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Orders []models.Order `json:"orders"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Data.Orders, 1)
	assert.Len(t, resp.Data.Orders[0].Items, 2)

	// Another session sees nothing.
	w = perform(r, http.MethodGet, "/api/orders?session_id=s2", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Orders)

	// The session parameter is mandatory.
	w = perform(r, http.MethodGet, "/api/orders", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
