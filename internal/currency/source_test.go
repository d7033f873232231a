package currency_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MichalMitros/etsy-listing-publisher/internal/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniRatio(t *testing.T) {
	tests := map[string]struct {
		serverHandler http.Handler
		currency      string
		wantRatio     float64
		wantErr       error
	}{
		"ok": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				assert.Equal(t, "application/json", req.Header.Get("Accept"), "should request json")
				wrt.Write([]byte(`{"base":"EUR","rates":{"USD":1.08,"GBP":0.85}}`))
			}),
			currency:  "USD",
			wantRatio: 1.08,
		},
		"unknown currency": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				wrt.Write([]byte(`{"rates":{"USD":1.08}}`))
			}),
			currency: "JPY",
			wantErr:  currency.ErrUnknownCurrency,
		},
		"bad status": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				wrt.WriteHeader(http.StatusInternalServerError)
			}),
			currency: "USD",
			wantErr:  currency.ErrStatusNotOK,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(tt.serverHandler)
			t.Cleanup(func() {
				srv.Close()
			})

			source := currency.NewHTTPSource(srv.Client(), srv.URL)
			ratio, err := source.Ratio(context.TODO(), tt.currency)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
				return
			}
			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.wantRatio, ratio, "should return ratio from response")
		})
	}
}

func TestUniRatioMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Write([]byte(`not-json`))
	}))
	t.Cleanup(func() {
		srv.Close()
	})

	source := currency.NewHTTPSource(srv.Client(), srv.URL)
	_, err := source.Ratio(context.TODO(), "USD")

	require.ErrorContains(t, err, "can't decode rates response", "should return error about malformed response")
}
