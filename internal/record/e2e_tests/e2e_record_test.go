package e2e_tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance_api/domain"
	categoryController "finance_api/internal/category/controller"
	categoryRepository "finance_api/internal/category/repository"
	categoryUsecase "finance_api/internal/category/usecase"
	recordController "finance_api/internal/record/controller"
	recordRepository "finance_api/internal/record/repository"
	recordUsecase "finance_api/internal/record/usecase"
	dsn2 "finance_api/internal/service/dsn"
	"finance_api/internal/service/logger"
	userController "finance_api/internal/user/controller"
	userRepository "finance_api/internal/user/repository"
	userUsecase "finance_api/internal/user/usecase"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := dsn2.FromEnvE2E()
	if dsn == "" {
		t.Skip("DB_HOST_TEST not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Record{})
	require.NoError(t, err)

	return db
}

func cleanupTestDB(t *testing.T, db *gorm.DB) {
	err := db.Migrator().DropTable(&domain.Record{}, &domain.Category{}, &domain.User{})
	assert.NoError(t, err)
}

func setupServer(db *gorm.DB) *httptest.Server {
	userHandler := userController.NewUserHandler(userUsecase.NewUserUsecase(userRepository.NewUserRepository(db)))
	categoryHandler := categoryController.NewCategoryHandler(categoryUsecase.NewCategoryUsecase(categoryRepository.NewCategoryRepository(db)))
	recordHandler := recordController.NewRecordHandler(recordUsecase.NewRecordUsecase(recordRepository.NewRecordRepository(db)))

	router := mux.NewRouter()
	router.HandleFunc("/user", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/category", categoryHandler.CreateCategory).Methods("POST")
	router.HandleFunc("/record", recordHandler.CreateRecord).Methods("POST")
	router.HandleFunc("/record", recordHandler.QueryRecords).Methods("GET")
	router.HandleFunc("/record/{id}", recordHandler.GetRecord).Methods("GET")

	return httptest.NewServer(router)
}

func postJSON(t *testing.T, url string, payload string) *http.Response {
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRecordFlowE2E(t *testing.T) {
	_ = godotenv.Load("../../../.env")
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	logger.AccessLogger = zap.NewNop()
	logger.DBLogger = zap.NewNop()

	server := setupServer(db)
	defer server.Close()

	resp := postJSON(t, server.URL+"/user", `{"name": "Nazar"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user := decodeJSON(t, resp)
	userID := user["id"].(float64)

	resp = postJSON(t, server.URL+"/category", `{"name": "Food & Dining"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	category := decodeJSON(t, resp)
	categoryID := category["id"].(float64)

	recordBody, err := json.Marshal(map[string]interface{}{
		"user_id":     userID,
		"category_id": categoryID,
		"datetime":    "2025-10-25T08:30:00Z",
		"amount":      "420.75",
	})
	require.NoError(t, err)

	resp = postJSON(t, server.URL+"/record", string(recordBody))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON(t, resp)
	assert.Equal(t, "420.75", created["amount"])

	resp, err = http.Get(server.URL + "/record?user_id=" + jsonNumber(userID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listing := decodeJSON(t, resp)
	assert.Equal(t, float64(1), listing["counter"])

	items := listing["items"].([]interface{})
	first := items[0].(map[string]interface{})
	assert.Equal(t, "420.75", first["amount"])
}

func TestForeignPrivateCategoryE2E(t *testing.T) {
	_ = godotenv.Load("../../../.env")
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	logger.AccessLogger = zap.NewNop()
	logger.DBLogger = zap.NewNop()

	server := setupServer(db)
	defer server.Close()

	owner := decodeJSON(t, postJSON(t, server.URL+"/user", `{"name": "Ihor"}`))
	outsider := decodeJSON(t, postJSON(t, server.URL+"/user", `{"name": "Olena"}`))

	categoryBody, err := json.Marshal(map[string]interface{}{
		"name":    "Dogs",
		"user_id": owner["id"],
	})
	require.NoError(t, err)
	category := decodeJSON(t, postJSON(t, server.URL+"/category", string(categoryBody)))

	recordBody, err := json.Marshal(map[string]interface{}{
		"user_id":     outsider["id"],
		"category_id": category["id"],
		"datetime":    "2025-10-25T08:30:00Z",
		"amount":      "10",
	})
	require.NoError(t, err)

	resp := postJSON(t, server.URL+"/record", string(recordBody))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "category not available for this user", body["error"])
}

func jsonNumber(v float64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
