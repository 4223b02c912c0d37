package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"

	"github.com/budgetwise/backend/pkg/advisor"
	"github.com/budgetwise/backend/pkg/router"
	"github.com/stretchr/testify/assert"
)

// Request is a helper method to simplify making a HTTP request for tests.
//
// The router is configured for the URL in the API_URL environment variable,
// recommendations are not available.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	return RequestWithAdvisor(t, nil, method, reqURL, body, headers...)
}

// RequestWithAdvisor works like Request, with adv generating recommendations.
func RequestWithAdvisor(t *testing.T, adv advisor.Advisor, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	r, teardown := NewRouter(t, adv)
	defer teardown()

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, bodyReader(t, body))

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// NewRouter returns the full router, mounted at the path of API_URL.
func NewRouter(t *testing.T, adv advisor.Advisor) (http.Handler, func()) {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		assert.FailNow(t, "environment variable API_URL must be set")
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		assert.FailNow(t, "environment variable API_URL must be a valid URL")
	}

	r, teardown, err := router.Config(baseURL)
	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	router.AttachRoutes(r.Group(baseURL.Path), adv)

	return r, teardown
}

func bodyReader(t *testing.T, body any) *bytes.Buffer {
	switch reflect.TypeOf(body).Kind() {
	case reflect.String:
		return bytes.NewBufferString(body.(string))
	case reflect.Struct, reflect.Map, reflect.Slice:
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.Fail(t, "Request body could not be marshalled from struct input", err)
		}
		return bytes.NewBuffer(byteStr)
	default:
		// Assume we got sent a *bytes.Buffer
		return body.(*bytes.Buffer)
	}
}
