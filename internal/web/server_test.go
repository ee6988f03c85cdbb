// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namecorrect/internal/corpus"
	"namecorrect/internal/match"
	"namecorrect/internal/matcher"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := corpus.LoadEmbedded()
	require.NoError(t, err)
	ws := NewWebServer("0", matcher.New(store), nil)
	srv := httptest.NewServer(ws.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestHandleCorrect(t *testing.T) {
	srv := newTestServer(t)

	body := `{"first_name":"Ake","last_name":"Svensson","country_code":"SE"}`
	resp, err := http.Post(srv.URL+"/correct", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload CorrectResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.True(t, payload.Success)
	require.NotNil(t, payload.Result)
	require.NotEmpty(t, payload.Result.FirstNameMatches)
	assert.Equal(t, "Åke", payload.Result.FirstNameMatches[0].Name)
	assert.Equal(t, 100, payload.Result.FirstNameMatches[0].Score)
	require.NotEmpty(t, payload.Result.LastNameMatches)
	assert.Equal(t, "Svensson", payload.Result.LastNameMatches[0].Name)
}

func TestHandleCorrectValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"whitespace names", `{"first_name":"  ","last_name":"\t"}`},
		{"malformed json", `{"first_name":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/correct", "application/json", strings.NewReader(tc.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var payload CorrectResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
			assert.False(t, payload.Success)
			assert.NotEmpty(t, payload.Error)
		})
	}
}

func TestHandleCorrectMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/correct")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "namecorrect-api", health["service"])
	assert.Contains(t, health, "build_info")
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/version")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.NotEmpty(t, info["version"])
	assert.NotEmpty(t, info["goVersion"])
}

func TestHandleNames(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/names/first_name/ake")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var details matcher.Details
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&details))
	assert.Equal(t, "Åke", details.Name)
	assert.Equal(t, match.FirstName, details.Type)
	assert.True(t, details.IsNordic)
}

func TestHandleNamesErrors(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/names/first_name/notaname")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/names/middle_name/ake")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/names/first_name")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleExport(t *testing.T) {
	srv := newTestServer(t)

	body := `{"last_name":"Svensson","country_code":"SE","format":"csv"}`
	resp, err := http.Post(srv.URL+"/export", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "namecorrect-results.csv")
}

func TestHandleExportUnknownFormat(t *testing.T) {
	srv := newTestServer(t)

	body := `{"last_name":"Svensson","format":"xml"}`
	resp, err := http.Post(srv.URL+"/export", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleFormats(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/formats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var formats []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&formats))
	assert.Contains(t, formats, "json")
	assert.Contains(t, formats, "text")
}
