package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"store-rating/models"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestStore(t *testing.T, r *gin.Engine, rating int) uint {
	t.Helper()
	w := doRequest(t, r, "POST", "/stores",
		fmt.Sprintf(`{"name":"Corner Grocery","address":"5 Market Square","rating":%d}`, rating))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		StoreID uint `json:"storeId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.StoreID)
	return resp.StoreID
}

func storeOverallRating(t *testing.T, db *gorm.DB, storeID uint) float64 {
	t.Helper()
	var store models.Store
	require.NoError(t, db.First(&store, "id = ?", storeID).Error)
	return store.OverallRating
}

func TestCreateStore(t *testing.T) {
	r, db := setupTestApp(t)

	storeID := createTestStore(t, r, 4)

	assert.Equal(t, 4.0, storeOverallRating(t, db, storeID),
		"initial overall rating comes from the add-store form")
}

func TestCreateStoreMissingFields(t *testing.T) {
	r, _ := setupTestApp(t)

	w := doRequest(t, r, "POST", "/stores", `{"name":"Corner Grocery"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateStoreRejectsOutOfRangeRating(t *testing.T) {
	r, _ := setupTestApp(t)

	for _, body := range []string{
		`{"name":"Corner Grocery","address":"5 Market Square","rating":6}`,
		`{"name":"Corner Grocery","address":"5 Market Square","rating":0}`,
		`{"name":"Corner Grocery","address":"5 Market Square"}`,
	} {
		w := doRequest(t, r, "POST", "/stores", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s must be rejected", body)
		assert.Contains(t, w.Body.String(), "Rating must be 1-5.",
			"every out-of-range rating gets the same per-field message")
	}
}

func TestListStores(t *testing.T) {
	r, _ := setupTestApp(t)
	createTestStore(t, r, 4)

	w := doRequest(t, r, "GET", "/stores", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stores"`)
	assert.Contains(t, w.Body.String(), `"overall_rating":4`)
	assert.Contains(t, w.Body.String(), "Corner Grocery")
}

func TestRateStoreSetsOverallRating(t *testing.T) {
	r, db := setupTestApp(t)
	storeID := createTestStore(t, r, 4)

	w := doRequest(t, r, "POST", fmt.Sprintf("/stores/%d/rate", storeID), `{"rating":3,"userId":1}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	assert.Equal(t, 3.0, storeOverallRating(t, db, storeID))
}

func TestRateStoreRejectsInvalidValues(t *testing.T) {
	r, db := setupTestApp(t)
	storeID := createTestStore(t, r, 4)

	for _, body := range []string{
		`{"rating":0}`,
		`{"rating":6}`,
		`{"rating":-1}`,
		`{"rating":"abc"}`,
		`{}`,
	} {
		w := doRequest(t, r, "POST", fmt.Sprintf("/stores/%d/rate", storeID), body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s must be rejected", body)
	}

	assert.Equal(t, 4.0, storeOverallRating(t, db, storeID), "rejected submissions must not change the rating")

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRateStoreUnknownStore(t *testing.T) {
	r, _ := setupTestApp(t)

	w := doRequest(t, r, "POST", "/stores/9999/rate", `{"rating":3}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateStoreInvalidID(t *testing.T) {
	r, _ := setupTestApp(t)

	w := doRequest(t, r, "POST", "/stores/abc/rate", `{"rating":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateStoreAveragesAcrossUsers(t *testing.T) {
	r, db := setupTestApp(t)
	storeID := createTestStore(t, r, 1)

	w := doRequest(t, r, "POST", fmt.Sprintf("/stores/%d/rate", storeID), `{"rating":2,"userId":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(t, r, "POST", fmt.Sprintf("/stores/%d/rate", storeID), `{"rating":5,"userId":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 3.5, storeOverallRating(t, db, storeID))

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Where("store_id = ?", storeID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestRateStoreResubmissionReplacesOwnRating(t *testing.T) {
	r, db := setupTestApp(t)
	storeID := createTestStore(t, r, 1)

	w := doRequest(t, r, "POST", fmt.Sprintf("/stores/%d/rate", storeID), `{"rating":2,"userId":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(t, r, "POST", fmt.Sprintf("/stores/%d/rate", storeID), `{"rating":4,"userId":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Where("store_id = ?", storeID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "same user re-rating must not add a second row")

	assert.Equal(t, 4.0, storeOverallRating(t, db, storeID))
}

func TestCounts(t *testing.T) {
	r, _ := setupTestApp(t)
	registerTestUser(t, r)
	storeID := createTestStore(t, r, 4)
	w := doRequest(t, r, "POST", fmt.Sprintf("/stores/%d/rate", storeID), `{"rating":5,"userId":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	type countResp struct {
		Count int64 `json:"count"`
	}

	var users countResp
	w = doRequest(t, r, "GET", "/users/count", "")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Equal(t, int64(2), users.Count, "seeded admin plus the registered user")

	var stores countResp
	w = doRequest(t, r, "GET", "/stores/count", "")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stores))
	assert.Equal(t, int64(1), stores.Count)

	var ratings countResp
	w = doRequest(t, r, "GET", "/ratings/count", "")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ratings))
	assert.Equal(t, int64(1), ratings.Count, "submitted ratings are persisted rows")
}
