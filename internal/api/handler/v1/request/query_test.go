package request_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/saywin/airport-api-service/internal/api/handler/v1/request"
)

func newTestContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", url, nil)

	return ctx
}

func TestGetPagination(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"defaults", "/orders", 1, 3, 0},
		{"explicit page", "/orders?page=4", 4, 3, 9},
		{"custom page size", "/orders?page=2&page_size=10", 2, 10, 10},
		{"page size capped", "/orders?page_size=500", 1, 20, 0},
		{"garbage falls back", "/orders?page=abc&page_size=-1", 1, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := request.GetPagination(newTestContext(t, tt.url), 3, 20)

			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.PageSize)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestGetIDList(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want []uint
	}{
		{"absent", "/routes", nil},
		{"single", "/routes?source=3", []uint{3}},
		{"multiple", "/routes?source=1,3,5", []uint{1, 3, 5}},
		{"skips junk entries", "/routes?source=1,x,3", []uint{1, 3}},
		{"tolerates spaces", "/routes?source=1,%202", []uint{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, request.GetIDList(newTestContext(t, tt.url), "source"))
		})
	}
}
