package handler_test

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/velora/salon-web/internal/cart"
    "github.com/velora/salon-web/internal/config"
    "github.com/velora/salon-web/internal/gateway"
    "github.com/velora/salon-web/internal/handler"
    "github.com/velora/salon-web/internal/model"
    "github.com/velora/salon-web/internal/router"
    "github.com/velora/salon-web/internal/session"
    "github.com/velora/salon-web/internal/store"
)

// stubBackend is a fake platform API covering the endpoints the flow
// tests touch. staleTokens flips every authenticated endpoint into
// rejecting the token, simulating a token that expired server-side.
type stubBackend struct {
    srv         *httptest.Server
    staleTokens bool
}

func newStubBackend(t *testing.T) *stubBackend {
    t.Helper()
    b := &stubBackend{}

    writeErr := func(w http.ResponseWriter, status int, msg string) {
        w.Header().Set("Content-Type", "application/json")
        w.WriteHeader(status)
        _ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
    }
    authorized := func(w http.ResponseWriter, r *http.Request) bool {
        auth := r.Header.Get("Authorization")
        if b.staleTokens || !strings.HasPrefix(auth, "Bearer tok-") {
            writeErr(w, http.StatusUnauthorized, "invalid token")
            return false
        }
        return true
    }

    mux := http.NewServeMux()
    mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusCreated)
    })
    mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
        var creds gateway.Credentials
        _ = json.NewDecoder(r.Body).Decode(&creds)
        if creds.Password != "pw" {
            writeErr(w, http.StatusUnauthorized, "Bad credentials")
            return
        }
        res := gateway.AuthResult{UserID: 1, FirstName: "Cleo", LastName: "Mahler", Email: creds.Email}
        switch creds.Email {
        case "staff@salon.test":
            res.AccessToken, res.Role = "tok-staff", model.RoleStaff
        default:
            res.AccessToken, res.Role = "tok-cust", model.RoleCustomer
        }
        _ = json.NewEncoder(w).Encode(res)
    })
    mux.HandleFunc("GET /reservations", func(w http.ResponseWriter, r *http.Request) {
        if !authorized(w, r) {
            return
        }
        _ = json.NewEncoder(w).Encode([]model.Reservation{{ID: 9, ServiceName: "Gel Manicure", Status: "CONFIRMED"}})
    })
    mux.HandleFunc("GET /staff/appointments", func(w http.ResponseWriter, r *http.Request) {
        if !authorized(w, r) {
            return
        }
        _ = json.NewEncoder(w).Encode([]model.Appointment{{ID: 9, CustomerName: "Cleo Mahler", ServiceName: "Gel Manicure", Status: "PENDING"}})
    })
    mux.HandleFunc("GET /products/2", func(w http.ResponseWriter, r *http.Request) {
        _ = json.NewEncoder(w).Encode(model.Product{ID: 2, Name: "Repair Serum", PriceCents: 3200, InStock: true})
    })
    mux.HandleFunc("GET /products/3", func(w http.ResponseWriter, r *http.Request) {
        _ = json.NewEncoder(w).Encode(model.Product{ID: 3, Name: "Limited Pomade", PriceCents: 900, InStock: false})
    })
    mux.HandleFunc("GET /availability", func(w http.ResponseWriter, r *http.Request) {
        now := time.Now().UTC()
        _ = json.NewEncoder(w).Encode([]model.TimeSlot{
            {StartsAt: now.Add(-time.Hour), EndsAt: now.Add(-30 * time.Minute), StaffID: 5},
            {StartsAt: now.Add(2 * time.Hour), EndsAt: now.Add(3 * time.Hour), StaffID: 5},
        })
    })
    mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
        if !authorized(w, r) {
            return
        }
        var req gateway.OrderRequest
        _ = json.NewDecoder(r.Body).Decode(&req)
        w.WriteHeader(http.StatusCreated)
        _ = json.NewEncoder(w).Encode(model.Order{ID: 77, Status: "PLACED", TotalCents: 6400, CreatedAt: time.Now().UTC()})
    })

    b.srv = httptest.NewServer(mux)
    t.Cleanup(b.srv.Close)
    return b
}

// newApp assembles the full route table over in-memory stores and the
// stub backend, the same wiring main performs minus redis.
func newApp(t *testing.T, backend *stubBackend) *echo.Echo {
    t.Helper()
    gw, err := gateway.New(gateway.Config{BaseURL: backend.srv.URL, Timeout: 2 * time.Second})
    require.NoError(t, err)

    cfg := config.Config{
        Env:        "test",
        Port:       "0",
        BackendURL: backend.srv.URL,
        CookieName: "salon_session",
        CookieTTL:  time.Hour,
    }
    mgr := session.NewManager(store.NewMemoryProvider(), gw)
    carts := cart.NewMemoryStore()

    e := echo.New()
    router.RegisterRoutes(e, router.Deps{
        Cfg:     cfg,
        Manager: mgr,
        Auth:    handler.NewAuthHandler(mgr, gw, carts, cfg),
        Catalog: handler.NewCatalogHandler(gw),
        Booking: handler.NewBookingHandler(gw),
        Cart:    handler.NewCartHandler(carts, gw),
        Orders:  handler.NewOrderHandler(gw),
        Staff:   handler.NewStaffHandler(gw, nil),
    })
    return e
}

func doJSON(e *echo.Echo, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
    var req *http.Request
    if body != "" {
        req = httptest.NewRequest(method, path, strings.NewReader(body))
        req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    } else {
        req = httptest.NewRequest(method, path, nil)
    }
    for _, ck := range cookies {
        req.AddCookie(ck)
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func login(t *testing.T, e *echo.Echo, email string) []*http.Cookie {
    t.Helper()
    rec := doJSON(e, http.MethodPost, "/v1/auth/login", `{"email":"`+email+`","password":"pw"}`, nil)
    require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
    cookies := rec.Result().Cookies()
    require.NotEmpty(t, cookies, "login must establish a session cookie")
    return cookies
}

func TestLoginMeLogoutFlow(t *testing.T) {
    e := newApp(t, newStubBackend(t))

    // Anonymous sessions cannot see the account page.
    rec := doJSON(e, http.MethodGet, "/v1/me", "", nil)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)

    // Wrong password: the backend's 401 and message pass through.
    rec = doJSON(e, http.MethodPost, "/v1/auth/login", `{"email":"cleo@salon.test","password":"nope"}`, nil)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.Contains(t, rec.Body.String(), "Bad credentials")

    cookies := login(t, e, "cleo@salon.test")

    rec = doJSON(e, http.MethodGet, "/v1/me", "", cookies)
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), "cleo@salon.test")

    rec = doJSON(e, http.MethodPost, "/v1/auth/logout", "", cookies)
    assert.Equal(t, http.StatusNoContent, rec.Code)

    rec = doJSON(e, http.MethodGet, "/v1/me", "", cookies)
    assert.Equal(t, http.StatusUnauthorized, rec.Code, "logout must end the session for the same cookie")
}

func TestProfileUpdateKeepsSession(t *testing.T) {
    e := newApp(t, newStubBackend(t))
    cookies := login(t, e, "cleo@salon.test")

    rec := doJSON(e, http.MethodPatch, "/v1/me", `{"last_name":"Z"}`, cookies)
    require.Equal(t, http.StatusOK, rec.Code)

    var resp struct {
        Token string             `json:"token"`
        User  *model.UserProfile `json:"user"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, "tok-cust", resp.Token, "token must survive a profile update")
    require.NotNil(t, resp.User)
    assert.Equal(t, "Cleo", resp.User.FirstName)
    assert.Equal(t, "Z", resp.User.LastName)
}

func TestStaffRoutesAreRoleGated(t *testing.T) {
    e := newApp(t, newStubBackend(t))

    // Customers are forbidden, staff get through.
    customer := login(t, e, "cleo@salon.test")
    rec := doJSON(e, http.MethodGet, "/v1/staff/appointments", "", customer)
    assert.Equal(t, http.StatusForbidden, rec.Code)

    staff := login(t, e, "staff@salon.test")
    rec = doJSON(e, http.MethodGet, "/v1/staff/appointments", "", staff)
    require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
    assert.Contains(t, rec.Body.String(), "Gel Manicure")

    // And customer-only routes reject staff.
    rec = doJSON(e, http.MethodGet, "/v1/booking/reservations", "", staff)
    assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestStaleTokenForcesLogout(t *testing.T) {
    backend := newStubBackend(t)
    e := newApp(t, backend)
    cookies := login(t, e, "cleo@salon.test")

    // The token dies server-side; the next authenticated call detects
    // it, the session is forced out and stays out.
    backend.staleTokens = true
    rec := doJSON(e, http.MethodGet, "/v1/booking/reservations", "", cookies)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.Contains(t, rec.Body.String(), "session expired")

    backend.staleTokens = false
    rec = doJSON(e, http.MethodGet, "/v1/me", "", cookies)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRotatesSessionID(t *testing.T) {
    e := newApp(t, newStubBackend(t))

    // A cookie value the browser arrived with is client-supplied: if
    // it survived login, whoever planted it could replay it afterwards
    // and read the victim's token and profile.
    planted := []*http.Cookie{{Name: "salon_session", Value: "attacker-chosen-sid"}}
    rec := doJSON(e, http.MethodPost, "/v1/auth/login", `{"email":"cleo@salon.test","password":"pw"}`, planted)
    require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

    fresh := rec.Result().Cookies()
    require.NotEmpty(t, fresh, "login must issue a session cookie")
    assert.NotEqual(t, "attacker-chosen-sid", fresh[0].Value, "pre-login session ID must not survive login")

    // The planted value names nothing after sign-in.
    rec = doJSON(e, http.MethodGet, "/v1/me", "", planted)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)

    // The rotated cookie carries the authenticated session.
    rec = doJSON(e, http.MethodGet, "/v1/me", "", fresh)
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), "cleo@salon.test")
}

func TestRegisterLeavesSessionAnonymous(t *testing.T) {
    e := newApp(t, newStubBackend(t))

    body := `{"first_name":"New","last_name":"Customer","email":"new@salon.test","password":"pw"}`
    rec := doJSON(e, http.MethodPost, "/v1/auth/register", body, nil)
    require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

    // No auto-login: the cookie minted for this visit stays anonymous.
    cookies := rec.Result().Cookies()
    rec = doJSON(e, http.MethodGet, "/v1/me", "", cookies)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartAndCheckoutFlow(t *testing.T) {
    e := newApp(t, newStubBackend(t))

    // Guests can fill a cart before signing in.
    rec := doJSON(e, http.MethodPost, "/v1/cart/items", `{"product_id":2,"quantity":2}`, nil)
    require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
    cookies := rec.Result().Cookies()
    require.NotEmpty(t, cookies)

    rec = doJSON(e, http.MethodGet, "/v1/cart", "", cookies)
    require.Equal(t, http.StatusOK, rec.Code)
    var ct struct {
        SubtotalCents uint64 `json:"subtotal_cents"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ct))
    assert.Equal(t, uint64(6400), ct.SubtotalCents)

    // Out-of-stock products are rejected up front.
    rec = doJSON(e, http.MethodPost, "/v1/cart/items", `{"product_id":3,"quantity":1}`, cookies)
    assert.Equal(t, http.StatusConflict, rec.Code)

    // Checkout needs a signed-in customer.
    rec = doJSON(e, http.MethodPost, "/v1/cart/checkout", "", cookies)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)

    // Sign in on the same browser. The session ID rotates on login and
    // the guest cart must follow the customer to the new session.
    rec = doJSON(e, http.MethodPost, "/v1/auth/login", `{"email":"cleo@salon.test","password":"pw"}`, cookies)
    require.Equal(t, http.StatusOK, rec.Code)
    cookies = rec.Result().Cookies()
    require.NotEmpty(t, cookies)

    rec = doJSON(e, http.MethodGet, "/v1/cart", "", cookies)
    require.Equal(t, http.StatusOK, rec.Code)
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ct))
    assert.Equal(t, uint64(6400), ct.SubtotalCents, "cart must survive the login rotation")

    rec = doJSON(e, http.MethodPost, "/v1/cart/checkout", "", cookies)
    require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
    assert.Contains(t, rec.Body.String(), "PLACED")

    // The cart is empty afterwards.
    rec = doJSON(e, http.MethodGet, "/v1/cart", "", cookies)
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ct))
    assert.Zero(t, ct.SubtotalCents)
}
