package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Authenticate(t *testing.T) {
	api := newTestAPI(&mockRepository{})
	token, err := testAuth().IssueToken(7)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	var seenCaller int64
	handler := api.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := callerID(r.Context())
		if !ok {
			t.Fatal("caller id missing from context")
		}
		seenCaller = id
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		name           string
		setupReq       func(r *http.Request)
		expectedStatus int
	}{
		{
			name:           "missing token",
			setupReq:       func(*http.Request) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "malformed token",
			setupReq: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer not.a.token")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "bearer header",
			setupReq: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+token)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "query parameter fallback",
			setupReq: func(r *http.Request) {
				q := r.URL.Query()
				q.Set("token", token)
				r.URL.RawQuery = q.Encode()
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			seenCaller = 0
			r := httptest.NewRequest(http.MethodGet, "/profile", nil)
			tt.setupReq(r)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, int64(7), seenCaller)
			}
		})
	}
}

func Test_RequestID(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	})

	t.Run("incoming id echoed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(requestIDHeader, "incoming-id")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, "incoming-id", w.Header().Get(requestIDHeader))
	})
}
