package httphandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/niksmo/warehouse/internal/adapter/httphandler"
	"github.com/niksmo/warehouse/internal/adapter/storage"
	"github.com/niksmo/warehouse/internal/adapter/token"
	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
	"github.com/niksmo/warehouse/internal/core/service"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Dashboard(
	ctx context.Context,
) (domain.Dashboard, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Dashboard), args.Error(1)
}

func (m *MockReporter) StockReport(
	ctx context.Context, search string,
) ([]domain.StockReportRow, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]domain.StockReportRow), args.Error(1)
}

func (m *MockReporter) RecentOrders(
	ctx context.Context,
) ([]domain.RecentOrderRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RecentOrderRow), args.Error(1)
}

// newTestHandler wires the real services over the in-memory stores,
// with the middleware chain the application uses. The reporter is
// mocked: the aggregation queries need a SQL database.
func newTestHandler(t *testing.T, reporter port.Reporter) http.Handler {
	t.Helper()

	issuer, err := token.NewJWT("testSecret", time.Hour)
	require.NoError(t, err)

	creds := service.AuthCredentials{Username: "admin", Password: "admin123"}

	mux := http.NewServeMux()
	httphandler.RegisterAuth(mux, service.NewAuth(creds, issuer))
	httphandler.RegisterProducts(mux, service.NewCatalog(storage.NewProducts()))
	httphandler.RegisterOrders(mux, service.NewOrders(storage.NewOrders(), nil))
	httphandler.RegisterImages(mux, service.NewImages(storage.NewImages()))
	if reporter != nil {
		httphandler.RegisterReports(mux, reporter)
	}

	return httphandler.AllowOrigin(httphandler.AllowJSON(mux))
}

func doJSON(
	t *testing.T, h http.Handler, method, target, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
