package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/poscatcafe/pos-terminal/internal/api"
	appErrors "github.com/poscatcafe/pos-terminal/internal/errors"
	"github.com/poscatcafe/pos-terminal/internal/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler) (*api.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return api.New(server.URL+"/api", 5*time.Second, staticToken("token-abc")), server
}

func TestAuthHeaders(t *testing.T) {
	t.Run("Success - Token Travels On Resource Requests", func(t *testing.T) {
		// Arrange
		var gotAuth, gotRequestID string

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotRequestID = r.Header.Get("X-Request-ID")

			_ = json.NewEncoder(w).Encode([]models.Product{})
		}))

		// Act
		_, err := client.ListProducts(context.Background())

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "token-abc", gotAuth)
		assert.NotEmpty(t, gotRequestID)
	})

	t.Run("Success - Login And Validate Go Out Bare", func(t *testing.T) {
		// Arrange
		headers := map[string]string{}

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers[r.URL.Path] = r.Header.Get("Authorization")

			switch r.URL.Path {
			case "/api/auth/login":
				_ = json.NewEncoder(w).Encode(models.LoginResponse{Success: true, Token: "t", User: &models.User{ID: 1}})
			case "/api/auth/validate":
				_ = json.NewEncoder(w).Encode(models.ValidateResponse{Valid: true})
			}
		}))

		// Act
		_, err := client.Login(context.Background(), models.LoginRequest{Username: "u", Password: "p"})
		assert.NoError(t, err)

		_, err = client.Validate(context.Background())
		assert.NoError(t, err)

		// Assert
		assert.Empty(t, headers["/api/auth/login"])
		assert.Empty(t, headers["/api/auth/validate"])
	})
}

func TestCalculateCart(t *testing.T) {
	t.Run("Success - Lines In Body, Customer And Coupon In Query", func(t *testing.T) {
		// Arrange
		var (
			gotQuery map[string][]string
			gotBody  []models.CartItem
		)

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/cart/calculate", r.URL.Path)

			gotQuery = r.URL.Query()
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			_ = json.NewEncoder(w).Encode(models.CartSummary{Subtotal: 100, Discount: 10, Total: 90, StockAvailable: true})
		}))

		customerID := int64(7)
		items := []models.CartItem{{ProductID: 1, ProductName: "Latte", Price: 50, Quantity: 2, Subtotal: 100}}

		// Act
		summary, err := client.CalculateCart(context.Background(), items, &customerID, true)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 90.0, summary.Total)
		assert.Equal(t, []string{"7"}, gotQuery["customerId"])
		assert.Equal(t, []string{"true"}, gotQuery["useCoupon"])
		assert.Equal(t, items, gotBody)
	})

	t.Run("Success - Anonymous Cart Sends No Query", func(t *testing.T) {
		// Arrange
		var gotRawQuery string

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRawQuery = r.URL.RawQuery

			_ = json.NewEncoder(w).Encode(models.CartSummary{StockAvailable: true})
		}))

		// Act
		_, err := client.CalculateCart(context.Background(), []models.CartItem{{ProductID: 1}}, nil, false)

		// Assert
		assert.NoError(t, err)
		assert.Empty(t, gotRawQuery)
	})
}

func TestErrorMapping(t *testing.T) {
	respond := func(status int, body string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		})
	}

	t.Run("Failure - Unauthorized Carries The Server Message", func(t *testing.T) {
		// Arrange
		client, _ := newTestClient(t, respond(http.StatusUnauthorized, `{"message":"Token expired"}`))

		// Act
		_, err := client.ListProducts(context.Background())

		// Assert
		assert.True(t, appErrors.IsUnauthorized(err))
		assert.ErrorContains(t, err, "Token expired")
	})

	t.Run("Failure - Plain Text Body Becomes The Message", func(t *testing.T) {
		// Arrange
		client, _ := newTestClient(t, respond(http.StatusBadRequest, "quantity must be positive"))

		// Act
		err := client.DeleteProduct(context.Background(), 1)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		assert.Equal(t, "quantity must be positive", appErr.Message)
	})

	t.Run("Failure - Unknown Status Maps To Server Error", func(t *testing.T) {
		// Arrange
		client, _ := newTestClient(t, respond(http.StatusBadGateway, ""))

		// Act
		_, err := client.ListProducts(context.Background())

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeServer, appErr.Code)
		assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
	})

	t.Run("Failure - Unreachable Server Is A Network Error", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		client := api.New(server.URL+"/api", time.Second, staticToken(""))

		// Act
		_, err := client.ListProducts(context.Background())

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNetwork, appErr.Code)
	})

	t.Run("Failure - Malformed JSON Is A Server Error", func(t *testing.T) {
		// Arrange
		client, _ := newTestClient(t, respond(http.StatusOK, "{not json"))

		// Act
		_, err := client.ListProducts(context.Background())

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeServer, appErr.Code)
	})
}

func TestUploadProductImage(t *testing.T) {
	t.Run("Success - Multipart File Reaches The Server", func(t *testing.T) {
		// Arrange
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/uploads/products", r.URL.Path)

			file, header, err := r.FormFile("file")
			assert.NoError(t, err)

			defer file.Close()

			assert.Equal(t, "latte.png", header.Filename)

			_ = json.NewEncoder(w).Encode(models.UploadResult{URL: "/images/latte.png"})
		}))

		// Act
		result, err := client.UploadProductImage(context.Background(), "latte.png", 4, []byte{1, 2, 3, 4})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "/images/latte.png", result.URL)
	})
}

func TestSettings(t *testing.T) {
	t.Run("Success - Update Always Targets Record One", func(t *testing.T) {
		// Arrange
		var gotBody models.Settings

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/settings", r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			_ = json.NewEncoder(w).Encode(gotBody)
		}))

		// Act
		updated, err := client.UpdateSettings(context.Background(), models.Settings{ID: 42, ShopName: "POS Cat Cafe"})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(1), gotBody.ID)
		assert.Equal(t, "POS Cat Cafe", updated.ShopName)
	})
}
