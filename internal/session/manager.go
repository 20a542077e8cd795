package session

import (
    "context"
    "sync"
    "time"

    "github.com/velora/salon-web/internal/store"
)

const (
    // machineIdleTTL bounds how long an untouched machine stays in the
    // registry. Machines are only an in-process view over the
    // credential store, so evicting one loses nothing: the next
    // request with that session ID rebuilds it and rehydrates from
    // storage. Without eviction every distinct cookie value a client
    // fabricates would pin a machine for the life of the process.
    machineIdleTTL = 30 * time.Minute
    sweepInterval  = 5 * time.Minute
)

type machineEntry struct {
    machine  *Machine
    lastSeen time.Time
}

// Manager hands out one Machine per browser session ID. Machines are
// created lazily, bootstrapped exactly once before being returned and
// evicted again after sitting idle, mirroring the TTL the credential
// store applies to the snapshots they front.
type Manager struct {
    mu        sync.Mutex
    stores    store.Provider
    api       Authenticator
    machines  map[string]*machineEntry
    idleTTL   time.Duration
    lastSweep time.Time
    now       func() time.Time
}

// NewManager builds a manager over the given credential store provider
// and backend authenticator.
func NewManager(stores store.Provider, api Authenticator) *Manager {
    return &Manager{
        stores:   stores,
        api:      api,
        machines: make(map[string]*machineEntry),
        idleTTL:  machineIdleTTL,
        now:      time.Now,
    }
}

// Session returns the machine for the given session ID, creating and
// bootstrapping it on first use.
func (mg *Manager) Session(ctx context.Context, sessionID string) *Machine {
    mg.mu.Lock()
    now := mg.now()
    mg.sweepLocked(now)
    e, ok := mg.machines[sessionID]
    if !ok {
        e = &machineEntry{machine: NewMachine(mg.stores.For(sessionID), mg.api)}
        mg.machines[sessionID] = e
    }
    e.lastSeen = now
    m := e.machine
    mg.mu.Unlock()

    // Outside the manager lock: rehydration may hit the store. The
    // machine's own sync.Once keeps it single-shot.
    m.Bootstrap(ctx)
    return m
}

// sweepLocked drops machines that have sat idle past the TTL. Runs at
// most once per sweepInterval so a busy server does not scan the map
// on every request. Callers must hold mu.
func (mg *Manager) sweepLocked(now time.Time) {
    if now.Sub(mg.lastSweep) < sweepInterval {
        return
    }
    mg.lastSweep = now
    for sid, e := range mg.machines {
        if now.Sub(e.lastSeen) > mg.idleTTL {
            delete(mg.machines, sid)
        }
    }
}

// Drop forgets the machine for a session ID. Called after logout and
// after the login rotation retires a pre-login ID; the next request
// with the same cookie simply builds a fresh anonymous machine.
func (mg *Manager) Drop(sessionID string) {
    mg.mu.Lock()
    defer mg.mu.Unlock()
    delete(mg.machines, sessionID)
}
