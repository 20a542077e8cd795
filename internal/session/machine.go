// Package session owns the client-side authentication state machine.
// A Machine tracks one browser session: whether it is authenticated,
// who the user is and which opaque access token the gateway should
// send. State is rehydrated once from the credential store and then
// changes only through Login, Logout and UpdateUser. Every other part
// of the application consumes read-only snapshots of it.
package session

import (
    "context"
    "errors"
    "log"
    "sync"

    "github.com/velora/salon-web/internal/gateway"
    "github.com/velora/salon-web/internal/model"
    "github.com/velora/salon-web/internal/store"
)

// Authenticator is the slice of the backend gateway the machine needs.
// *gateway.Client satisfies it; tests substitute stubs.
type Authenticator interface {
    Authenticate(ctx context.Context, creds gateway.Credentials) (gateway.AuthResult, error)
    Register(ctx context.Context, data gateway.RegistrationData) error
}

// State is a read-only snapshot handed to consumers. User is a copy;
// mutations flow only through UpdateUser.
type State struct {
    IsAuthenticated bool
    IsLoading       bool
    Token           string
    User            *model.UserProfile
}

// Result is the tagged outcome of Login, Register and UpdateUser.
// Machine operations never panic and never return raw errors to
// consumers; failures carry a message and, when the backend supplied
// one, the HTTP status (callers use 401 to tell an unverified account
// apart from plain bad credentials).
type Result struct {
    Success bool
    Message string
    Status  int
    Token   string
}

func failure(msg string, status int) Result {
    return Result{Message: msg, Status: status}
}

const unreachableMsg = "the booking service is currently unreachable"

// Machine is the session state machine for a single browser session.
//
// Invariant: authenticated is true exactly when both token and user are
// present. loading is true only during the initial rehydration and
// while a Login call is in flight; while it is true no assumption may
// be made about the rest of the state.
//
// All fields are guarded by mu. The mutex serializes state access but
// deliberately does not fence overlapping Login calls: the lock is
// released around the network round-trip, so two concurrent Logins
// resolve last-write-wins. For a human-driven UI that submits one form
// at a time this is an accepted property, not a bug.
type Machine struct {
    mu            sync.Mutex
    store         store.Store
    api           Authenticator
    bootstrapOnce sync.Once

    authenticated bool
    loading       bool
    token         string
    user          *model.UserProfile
}

// NewMachine returns a machine in the initializing state: not
// authenticated, loading until Bootstrap has run.
func NewMachine(st store.Store, api Authenticator) *Machine {
    return &Machine{store: st, api: api, loading: true}
}

// Bootstrap rehydrates the session from the credential store. A stored
// snapshot is trusted as-is without a validation round-trip to the
// backend; a token that has gone stale surfaces later as a 401 on some
// authenticated call and is handled there. A malformed snapshot is
// discarded and the store cleared, leaving the session anonymous.
// Bootstrap runs at most once per machine; repeat calls are no-ops.
func (m *Machine) Bootstrap(ctx context.Context) {
    m.bootstrapOnce.Do(func() {
        snap, err := m.store.Get(ctx)
        m.mu.Lock()
        defer m.mu.Unlock()
        m.loading = false
        if err != nil {
            if err == store.ErrCorruptSnapshot {
                if clearErr := m.store.Clear(ctx); clearErr != nil {
                    log.Printf("session: clearing corrupt snapshot: %v", clearErr)
                }
            } else {
                log.Printf("session: credential store unavailable at bootstrap: %v", err)
            }
            return
        }
        if snap == nil {
            return
        }
        u := snap.User
        m.token = snap.Token
        m.user = &u
        m.authenticated = true
    })
}

// Login exchanges credentials for a session. On success the snapshot
// is persisted (replacing any prior one, so a redundant Login while
// already authenticated simply swaps the session) and the machine
// becomes authenticated. On failure the machine is left exactly as it
// was.
func (m *Machine) Login(ctx context.Context, creds gateway.Credentials) Result {
    m.mu.Lock()
    m.loading = true
    m.mu.Unlock()

    res, err := m.api.Authenticate(ctx, creds)

    m.mu.Lock()
    defer m.mu.Unlock()
    m.loading = false

    if err != nil {
        var apiErr *gateway.APIError
        if errors.As(err, &apiErr) {
            return failure(apiErr.Message, apiErr.Status)
        }
        return failure(unreachableMsg, 0)
    }

    user := model.UserProfile{
        ID:        res.UserID,
        FirstName: res.FirstName,
        LastName:  res.LastName,
        Email:     res.Email,
        Role:      res.Role,
    }
    if err := m.store.Set(ctx, store.Snapshot{Token: res.AccessToken, User: user}); err != nil {
        log.Printf("session: persisting snapshot: %v", err)
        return failure("your session could not be saved, please try again", 0)
    }
    m.token = res.AccessToken
    m.user = &user
    m.authenticated = true
    return Result{Success: true, Token: res.AccessToken}
}

// Register creates an account through the gateway. It never mutates
// session state: the platform requires email verification before the
// first login, so registration is not auto-login.
func (m *Machine) Register(ctx context.Context, data gateway.RegistrationData) Result {
    if err := m.api.Register(ctx, data); err != nil {
        var apiErr *gateway.APIError
        if errors.As(err, &apiErr) {
            return failure(apiErr.Message, apiErr.Status)
        }
        return failure(unreachableMsg, 0)
    }
    return Result{Success: true}
}

// Logout unconditionally clears the credential store and resets the
// machine to anonymous. It is idempotent; calling it while already
// anonymous just re-clears storage.
func (m *Machine) Logout(ctx context.Context) {
    if err := m.store.Clear(ctx); err != nil {
        log.Printf("session: clearing snapshot on logout: %v", err)
    }
    m.mu.Lock()
    defer m.mu.Unlock()
    m.authenticated = false
    m.loading = false
    m.token = ""
    m.user = nil
}

// UpdateUser shallow-merges the patch into the current profile, writes
// the merged profile back to the store with the token unchanged and
// republishes the authenticated state. Calling it while anonymous is
// rejected explicitly rather than silently ignored.
func (m *Machine) UpdateUser(ctx context.Context, patch model.ProfilePatch) Result {
    m.mu.Lock()
    defer m.mu.Unlock()
    if !m.authenticated {
        return failure("no authenticated session to update", 0)
    }
    merged := patch.Apply(*m.user)
    if err := m.store.Set(ctx, store.Snapshot{Token: m.token, User: merged}); err != nil {
        log.Printf("session: persisting profile update: %v", err)
        return failure("your profile could not be saved, please try again", 0)
    }
    m.user = &merged
    return Result{Success: true, Token: m.token}
}

// State returns a read-only snapshot of the current session. The user
// profile is copied so consumers can never mutate shared state.
func (m *Machine) State() State {
    m.mu.Lock()
    defer m.mu.Unlock()
    s := State{
        IsAuthenticated: m.authenticated,
        IsLoading:       m.loading,
        Token:           m.token,
    }
    if m.user != nil {
        u := *m.user
        s.User = &u
    }
    return s
}

// HasRole reports whether the session user carries the given role. It
// returns false, never panics, when no user is present.
func (m *Machine) HasRole(role model.Role) bool {
    m.mu.Lock()
    defer m.mu.Unlock()
    return m.user != nil && m.user.Role == role
}

// IsAdmin reports whether the session user is an administrator.
func (m *Machine) IsAdmin() bool { return m.HasRole(model.RoleAdmin) }

// IsStaff reports whether the session user is a salon employee.
func (m *Machine) IsStaff() bool { return m.HasRole(model.RoleStaff) }

// IsCustomer reports whether the session user is a customer.
func (m *Machine) IsCustomer() bool { return m.HasRole(model.RoleCustomer) }
