package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"newpay_simulator/internal/domain"
	"newpay_simulator/internal/usecase"
	mock_interfaces "newpay_simulator/internal/usecase/interfaces/mocks"
)

// testEnv wires the handlers against a real in-memory store so handler tests
// exercise the same paths production traffic takes. Only the snapshot store is
// mocked.
type testEnv struct {
	state  *domain.State
	repo   *mock_interfaces.MockISnapshotRepository
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	state := domain.NewState()
	association := usecase.NewAssociationUseCase(state)
	financial := usecase.NewFinancialUseCase(state)
	session := usecase.NewSessionUseCase(state)

	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISnapshotRepository(ctrl)
	snapshot := usecase.NewSnapshotUseCase(state, repo, "")

	productHandler := NewProductHandler(association, financial)
	clientHandler := NewClientHandler(association, financial)
	financialHandler := NewFinancialHandler(financial)
	sessionHandler := NewSessionHandler(session)
	snapshotHandler := NewSnapshotHandler(snapshot, session)

	router := gin.New()
	v1 := router.Group("/v1")
	v1.POST("/products", productHandler.CreateProduct)
	v1.GET("/products", productHandler.ListProducts)
	v1.GET("/products/:id", productHandler.GetProduct)
	v1.POST("/clients", clientHandler.CreateClient)
	v1.GET("/clients", clientHandler.ListClients)
	v1.GET("/clients/:id", clientHandler.GetClient)
	v1.PUT("/clients/:id", clientHandler.UpdateClient)
	v1.GET("/strategies", financialHandler.ListStrategies)
	v1.PATCH("/strategies/:id/toggle", financialHandler.ToggleStrategy)
	v1.GET("/financials", financialHandler.GetFinancials)
	v1.GET("/budget", financialHandler.GetBudget)
	v1.GET("/state", sessionHandler.GetState)
	v1.PUT("/section", sessionHandler.SetSection)
	v1.PUT("/frameworks/pestel/selection", sessionHandler.SetPestelSelection)
	v1.PUT("/frameworks/porter/selection", sessionHandler.SetPorterSelection)
	v1.POST("/snapshot/save", snapshotHandler.SaveSnapshot)
	v1.POST("/snapshot/load", snapshotHandler.LoadSnapshot)

	return &testEnv{state: state, repo: repo, router: router}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status: got %d want %d body=%s", rec.Code, want, rec.Body.String())
	}
}

func mustErrorCode(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	if body.Code != want {
		t.Fatalf("error code: got %q want %q", body.Code, want)
	}
}
