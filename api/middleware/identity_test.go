package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"

	"github.com/meridianhq/meridian/api/handlers"
	"github.com/meridianhq/meridian/identity"
	"github.com/meridianhq/meridian/lib/mock"
)

const (
	dummyRoute     = "/v1beta1/dummy"
	identityHeader = "Meridian-User-Email"
)

func TestAuthorize(t *testing.T) {
	logger := log.NewNoop()

	t.Run("should return HTTP 400 when identity header not present", func(t *testing.T) {
		authorizer := new(mock.Authorizer)
		r := mux.NewRouter()
		r.Use(Authorize(authorizer, identityHeader, logger))
		r.Path(dummyRoute).Methods(http.MethodGet)

		req, _ := http.NewRequest("GET", dummyRoute, nil)

		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		response := &handlers.ErrorResponse{}
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, `identity header "Meridian-User-Email" is empty`, response.Reason)
	})

	t.Run("should return HTTP 500 when the authorizer fails", func(t *testing.T) {
		authorizer := new(mock.Authorizer)
		authorizer.On("Authorize", "some-email").Return(identity.Role(""), errors.New("some error"))
		defer authorizer.AssertExpectations(t)

		r := mux.NewRouter()
		r.Use(Authorize(authorizer, identityHeader, logger))
		r.Path(dummyRoute).Methods(http.MethodGet)

		req, _ := http.NewRequest("GET", dummyRoute, nil)
		req.Header.Set(identityHeader, "some-email")

		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		response := &handlers.ErrorResponse{}
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, "error resolving caller role", response.Reason)
	})

	t.Run("should propagate the resolved identity within the request context", func(t *testing.T) {
		authorizer := new(mock.Authorizer)
		authorizer.On("Authorize", "ops@meridianhq.io").Return(identity.RoleEditor, nil)
		defer authorizer.AssertExpectations(t)

		r := mux.NewRouter()
		r.Use(Authorize(authorizer, identityHeader, logger))
		r.Path(dummyRoute).Methods(http.MethodGet).HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			id := identity.FromContext(r.Context())
			_, err := rw.Write([]byte(id.Email + ":" + id.Role.String()))
			if err != nil {
				t.Fatal(err)
			}
		})

		req, _ := http.NewRequest("GET", dummyRoute, nil)
		req.Header.Set(identityHeader, "ops@meridianhq.io")

		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ops@meridianhq.io:editor", rr.Body.String())
	})
}
