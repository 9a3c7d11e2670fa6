package integration_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// Store-generated fields that differ between runs.
var keysToIgnore = map[string]struct{}{
	"_id":         {},
	"inserted_at": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	clean(actual)

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func clean(v any) {
	switch v := v.(type) {
	case map[string]any:
		for k := range v {
			if _, ok := keysToIgnore[k]; ok {
				delete(v, k)
				continue
			}
			clean(v[k])
		}
	case []any:
		for _, item := range v {
			clean(item)
		}
	}
}

func decodeResponse[T any](t testing.TB, res *http.Response) T {
	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))

	return v
}

// imdbIDs lists the external identifiers of items in response order.
func imdbIDs(items []map[string]any) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		id, _ := item["imdb_id"].(string)
		ids = append(ids, id)
	}

	return ids
}
