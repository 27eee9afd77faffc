package namerhttp_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namer/pkg/namer"
	"github.com/dmitrymomot/namer/pkg/namerhttp"
)

func newRouter() http.Handler {
	return namerhttp.Router(namer.New(namer.DefaultConfig()), nil)
}

func postJSON(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/filenames", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestGenerate(t *testing.T) {
	h := newRouter()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "slug",
			body: `{"name":"Report 2024","extension":"pdf","strategy":"slug"}`,
			want: "report-2024.pdf",
		},
		{
			name: "numbered with json number",
			body: `{"name":"test","extension":"txt","strategy":"numbered","options":{"number":5}}`,
			want: "test_5.txt",
		},
		{
			name: "strategy name is case insensitive",
			body: `{"name":"test","extension":"txt","strategy":"Prefix","options":{"prefix":"custom_"}}`,
			want: "custom_test.txt",
		},
		{
			name: "unknown strategy keeps name",
			body: `{"name":"test","extension":"txt","strategy":"nope"}`,
			want: "test.txt",
		},
		{
			name: "null length disables configured truncation",
			body: `{"name":"test","extension":"txt","strategy":"hash","options":{"algorithm":"md5","length":null}}`,
			want: "098f6bcd4621d373cade4e832627b4f6.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.want, decode[namerhttp.Response](t, rec).Filename)
		})
	}
}

func TestGenerate_Defaults(t *testing.T) {
	rec := postJSON(t, newRouter(), `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	filename := decode[namerhttp.Response](t, rec).Filename
	assert.Regexp(t, `^[A-Za-z0-9]{16}\.txt$`, filename)
}

func TestGenerate_Errors(t *testing.T) {
	h := newRouter()

	t.Run("invalid option", func(t *testing.T) {
		rec := postJSON(t, h, `{"name":"test","strategy":"hash","options":{"algorithm":"bogus"}}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decode[namerhttp.ErrorResponse](t, rec).Error, "bogus")
	})

	t.Run("null required prefix", func(t *testing.T) {
		rec := postJSON(t, h, `{"name":"test","strategy":"prefix","options":{"prefix":null}}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := postJSON(t, h, `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpload(t *testing.T) {
	h := newRouter()

	newUpload := func(t *testing.T, filename, strategy string) *http.Request {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		if filename != "" {
			fw, err := mw.CreateFormFile("file", filename)
			require.NoError(t, err)
			_, err = fw.Write([]byte("content"))
			require.NoError(t, err)
		}
		if strategy != "" {
			require.NoError(t, mw.WriteField("strategy", strategy))
		}
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/filenames/upload", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		return req
	}

	t.Run("slug of uploaded name", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newUpload(t, "My Holiday Photo.JPG", "slug"))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "my-holiday-photo.jpg", decode[namerhttp.Response](t, rec).Filename)
	})

	t.Run("missing file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newUpload(t, "", "slug"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStrategiesAndHealth(t *testing.T) {
	h := newRouter()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/strategies", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string][]string](t, rec)
	assert.Contains(t, body["strategies"], "slug")
	assert.Contains(t, body["algorithms"], "sha256")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}
