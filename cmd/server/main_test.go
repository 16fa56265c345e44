package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"billsplit/pkg/testutil"
)

func TestHandleHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all dependencies up", func(t *testing.T) {
		rr := testutil.DoRequest(handleHealth([]healthCheck{{"database", ok}, {"redis", ok}}),
			httptest.NewRequest(http.MethodGet, "/healthz", nil))
		testutil.AssertStatusOK(t, rr)
		body := *testutil.UnmarshalResponse[map[string]string](t, rr)
		assert.Equal(t, map[string]string{"database": "ok", "redis": "ok"}, body)
	})

	t.Run("one dependency down", func(t *testing.T) {
		rr := testutil.DoRequest(handleHealth([]healthCheck{{"database", ok}, {"redis", down}}),
			httptest.NewRequest(http.MethodGet, "/healthz", nil))
		testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
		body := *testutil.UnmarshalResponse[map[string]string](t, rr)
		assert.Equal(t, "unavailable", body["redis"])
	})

	t.Run("in-memory mode has nothing to check", func(t *testing.T) {
		rr := testutil.DoRequest(handleHealth(nil), httptest.NewRequest(http.MethodGet, "/healthz", nil))
		testutil.AssertStatusOK(t, rr)
	})
}
