package gateway

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/velora/salon-web/internal/model"
)

// mintToken produces an HS256 access token shaped like the ones the
// backend platform issues, so fixtures carry realistic opaque tokens.
func mintToken(t *testing.T, userID uint64, role model.Role) string {
    t.Helper()
    claims := jwt.MapClaims{
        "sub":  userID,
        "role": string(role),
        "exp":  time.Now().UTC().Add(15 * time.Minute).Unix(),
        "iat":  time.Now().UTC().Unix(),
    }
    signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
    require.NoError(t, err)
    return signed
}

func newStubBackend(t *testing.T) (*httptest.Server, string) {
    t.Helper()
    token := mintToken(t, 1, model.RoleCustomer)

    mux := http.NewServeMux()
    mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
        var creds Credentials
        require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
        if creds.Password != "correct" {
            w.Header().Set("Content-Type", "application/json")
            w.WriteHeader(http.StatusUnauthorized)
            _ = json.NewEncoder(w).Encode(map[string]string{"message": "Bad credentials"})
            return
        }
        _ = json.NewEncoder(w).Encode(AuthResult{
            AccessToken: token,
            UserID:      1,
            FirstName:   "A",
            LastName:    "B",
            Email:       creds.Email,
            Role:        model.RoleCustomer,
        })
    })
    mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
        var data RegistrationData
        require.NoError(t, json.NewDecoder(r.Body).Decode(&data))
        if data.Email == "taken@b.com" {
            w.WriteHeader(http.StatusConflict)
            _ = json.NewEncoder(w).Encode(map[string]string{"message": "email already registered"})
            return
        }
        w.WriteHeader(http.StatusCreated)
    })
    mux.HandleFunc("GET /reservations", func(w http.ResponseWriter, r *http.Request) {
        if r.Header.Get("Authorization") != "Bearer "+token {
            w.WriteHeader(http.StatusUnauthorized)
            _ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid token"})
            return
        }
        _ = json.NewEncoder(w).Encode([]model.Reservation{{ID: 4, ServiceName: "Hot Stone Massage", Status: "CONFIRMED"}})
    })

    srv := httptest.NewServer(mux)
    t.Cleanup(srv.Close)
    return srv, token
}

func newTestClient(t *testing.T, baseURL string) *Client {
    t.Helper()
    c, err := New(Config{BaseURL: baseURL, Timeout: 2 * time.Second})
    require.NoError(t, err)
    return c
}

func TestNewRequiresBaseURL(t *testing.T) {
    _, err := New(Config{})
    assert.Error(t, err)
}

func TestAuthenticateSuccess(t *testing.T) {
    srv, token := newStubBackend(t)
    c := newTestClient(t, srv.URL)

    res, err := c.Authenticate(context.Background(), Credentials{Email: "a@b.com", Password: "correct"})
    require.NoError(t, err)
    assert.Equal(t, token, res.AccessToken)
    assert.Equal(t, model.RoleCustomer, res.Role)
    assert.Equal(t, "a@b.com", res.Email)
}

func TestAuthenticateRejectedCarriesStatus(t *testing.T) {
    srv, _ := newStubBackend(t)
    c := newTestClient(t, srv.URL)

    _, err := c.Authenticate(context.Background(), Credentials{Email: "a@b.com", Password: "wrong"})
    require.Error(t, err)

    var apiErr *APIError
    require.ErrorAs(t, err, &apiErr)
    assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
    assert.Equal(t, "Bad credentials", apiErr.Message)
    assert.Equal(t, http.StatusUnauthorized, StatusOf(err))
}

func TestRegisterConflict(t *testing.T) {
    srv, _ := newStubBackend(t)
    c := newTestClient(t, srv.URL)

    err := c.Register(context.Background(), RegistrationData{Email: "taken@b.com", Password: "pw"})
    var apiErr *APIError
    require.ErrorAs(t, err, &apiErr)
    assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestBearerTokenAttached(t *testing.T) {
    srv, token := newStubBackend(t)
    c := newTestClient(t, srv.URL)

    reservations, err := c.ListReservations(context.Background(), token)
    require.NoError(t, err)
    require.Len(t, reservations, 1)
    assert.Equal(t, "Hot Stone Massage", reservations[0].ServiceName)

    // A stale token is answered with a 401 the caller can inspect.
    _, err = c.ListReservations(context.Background(), "stale")
    assert.Equal(t, http.StatusUnauthorized, StatusOf(err))
}

func TestTransportFailureIsNotAnAPIError(t *testing.T) {
    c := newTestClient(t, "http://127.0.0.1:1")

    _, err := c.ListServices(context.Background(), "")
    require.Error(t, err)
    assert.Zero(t, StatusOf(err))
}

func TestErrorDecodeFallsBackToStatusText(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        http.Error(w, "not json at all", http.StatusBadGateway)
    }))
    t.Cleanup(srv.Close)
    c := newTestClient(t, srv.URL)

    _, err := c.ListProducts(context.Background())
    var apiErr *APIError
    require.ErrorAs(t, err, &apiErr)
    assert.Equal(t, http.StatusBadGateway, apiErr.Status)
    assert.NotEmpty(t, apiErr.Message)
}
