package outmanagetime_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ssms/internal/outmanagetime"
	outmanagetimeerrors "ssms/internal/outmanagetime/errors"
	outmanagetimeMock "ssms/internal/outmanagetime/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("tenant_id", tenantID)
	c.Set("user_id", "admin")
	return c, w
}

func TestHandler_Save(t *testing.T) {
	t.Run("insert returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := outmanagetimeMock.NewMockService(ctrl)
		h := outmanagetime.NewHandler(svc)

		svc.EXPECT().
			Save(gomock.Any(), tenantID, "admin", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, req outmanagetime.SaveUsageRequest) (outmanagetime.UsageEntryResponse, error) {
				assert.Nil(t, req.ID)
				assert.Equal(t, "1.5", string(req.Quantity))
				return outmanagetime.UsageEntryResponse{ID: 10}, nil
			})

		c, w := newContext(http.MethodPost, "/out-manage-time/details",
			`{"staff_id":"dev001","period_start":"20250101","period_end":"20251231","quantity":1.5}`)
		h.Save(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("update of unknown id is 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := outmanagetimeMock.NewMockService(ctrl)
		h := outmanagetime.NewHandler(svc)

		svc.EXPECT().Save(gomock.Any(), tenantID, "admin", gomock.Any()).
			Return(outmanagetime.UsageEntryResponse{}, outmanagetimeerrors.ErrUsageNotFound)

		c, w := newContext(http.MethodPost, "/out-manage-time/details",
			`{"id":99,"staff_id":"dev001","period_start":"20250101","period_end":"20251231"}`)
		h.Save(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})

	t.Run("wrong id type is a validation error", func(t *testing.T) {
		h := outmanagetime.NewHandler(outmanagetimeMock.NewMockService(gomock.NewController(t)))

		c, w := newContext(http.MethodPost, "/out-manage-time/details", `{"id":"abc"}`)
		h.Save(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_BulkDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := outmanagetimeMock.NewMockService(ctrl)
	h := outmanagetime.NewHandler(svc)

	svc.EXPECT().DeleteDetails(gomock.Any(), tenantID, "admin", []int64{3, 4}).Return(true, nil)

	c, w := newContext(http.MethodPost, "/out-manage-time/details/bulk-delete", `{"ids":[3,4]}`)
	h.BulkDelete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.JSONEq(t, `{"deleted":true}`, string(env.Data))
}

func TestHandler_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := outmanagetimeMock.NewMockService(ctrl)
	h := outmanagetime.NewHandler(svc)

	svc.EXPECT().
		ListSummary(gomock.Any(), tenantID, outmanagetime.SummaryRequest{AsOf: "20250601", Name: "kim"}).
		Return([]outmanagetime.SummaryResponse{{StaffID: "dev001", Total: "12", Used: "2", Remaining: "10"}}, nil)

	c, w := newContext(http.MethodGet, "/out-manage-time/summary?as_of=20250601&name=kim", "")
	h.Summary(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
