package handler_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/craviont/craviont-site-api/internal/dto"
	"github.com/craviont/craviont-site-api/internal/handler"
	"github.com/craviont/craviont-site-api/internal/service"
)

type mockDispatchLogService struct {
	query dto.DispatchLogQuery
	items []dto.DispatchLogResponse
	err   error
}

func (m *mockDispatchLogService) List(_ context.Context, query dto.DispatchLogQuery) ([]dto.DispatchLogResponse, dto.PaginationMeta, error) {
	m.query = query
	if m.err != nil {
		return nil, dto.PaginationMeta{}, m.err
	}
	return m.items, dto.NewPaginationMeta(1, 20, int64(len(m.items))), nil
}

func TestAdminDispatchHandler_List(t *testing.T) {
	svc := &mockDispatchLogService{items: []dto.DispatchLogResponse{{ReferenceID: "ref-1", Status: "failed"}}}
	app := fiber.New()
	handler.NewAdminDispatchHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v1/admin/dispatches"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/admin/dispatches?status=failed&kind=contact&page=2&page_size=5", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Data []dto.DispatchLogResponse `json:"data"`
		Meta struct {
			Pagination dto.PaginationMeta `json:"pagination"`
		} `json:"meta"`
	}
	decodeResponse(t, resp, &payload)
	require.Len(t, payload.Data, 1)
	require.Equal(t, int64(1), payload.Meta.Pagination.TotalItems)
	require.Equal(t, dto.DispatchLogQuery{Status: "failed", FormKind: "contact", Page: 2, PageSize: 5}, svc.query)
}

func TestAdminDispatchHandler_Errors(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		err    error
		status int
	}{
		{name: "bad page", url: "/api/v1/admin/dispatches?page=x", status: fiber.StatusBadRequest},
		{name: "invalid query", url: "/api/v1/admin/dispatches?status=pending", err: fmt.Errorf("%w: status", service.ErrInvalidQuery), status: fiber.StatusBadRequest},
		{name: "store failure", url: "/api/v1/admin/dispatches", err: fmt.Errorf("db down"), status: fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			handler.NewAdminDispatchHandler(&mockDispatchLogService{err: tc.err}, zerolog.New(io.Discard)).Register(app.Group("/api/v1/admin/dispatches"))

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.url, nil))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
