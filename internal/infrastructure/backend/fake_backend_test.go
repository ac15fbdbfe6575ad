package backend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/tedcar/rental-console/internal/core/domain"
	"github.com/tedcar/rental-console/internal/pkg/requestid"
)

// fakeBackend mimics the rental backend: one user table, one vehicle table,
// bearer tokens of the form "tok-<username>".
type fakeBackend struct {
	mu       sync.Mutex
	users    map[string]string
	vehicles []domain.Vehicle
	owners   map[int64]string
	nextID   int64

	lastAuth        string
	lastContentType string
	lastRequestID   string
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	fb := &fakeBackend{users: map[string]string{}, owners: map[int64]string{}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})
	mux.HandleFunc("POST /auth/register", fb.register)
	mux.HandleFunc("POST /auth/token", fb.token)
	mux.HandleFunc("GET /vehicles", fb.list)
	mux.HandleFunc("GET /vehicles/my-vehicles", fb.listMine)
	mux.HandleFunc("POST /vehicles", fb.create)
	mux.HandleFunc("PUT /vehicles/{id}", fb.update)
	mux.HandleFunc("DELETE /vehicles/{id}", fb.remove)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.lastAuth = r.Header.Get("Authorization")
		fb.lastContentType = r.Header.Get("Content-Type")
		fb.lastRequestID = r.Header.Get(requestid.Header)
		fb.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return fb, srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func detail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

func (fb *fakeBackend) caller(r *http.Request) (string, bool) {
	user, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer tok-")
	if !ok {
		return "", false
	}
	_, known := fb.users[user]
	return user, known
}

func (fb *fakeBackend) register(w http.ResponseWriter, r *http.Request) {
	var reg domain.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		detail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if _, exists := fb.users[reg.Username]; exists {
		detail(w, http.StatusBadRequest, "Username already registered")
		return
	}
	fb.users[reg.Username] = reg.Password
	writeJSON(w, http.StatusOK, map[string]any{"id": len(fb.users), "username": reg.Username})
}

func (fb *fakeBackend) token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		detail(w, http.StatusUnprocessableEntity, "invalid form")
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	user, pass := r.PostForm.Get("username"), r.PostForm.Get("password")
	if stored, ok := fb.users[user]; !ok || stored != pass {
		detail(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	writeJSON(w, http.StatusOK, domain.TokenResponse{AccessToken: "tok-" + user, TokenType: "bearer"})
}

func (fb *fakeBackend) list(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := append([]domain.Vehicle{}, fb.vehicles...)
	if skip, _ := strconv.Atoi(r.URL.Query().Get("skip")); skip > 0 {
		out = out[min(skip, len(out)):]
	}
	if limit, _ := strconv.Atoi(r.URL.Query().Get("limit")); limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	writeJSON(w, http.StatusOK, out)
}

func (fb *fakeBackend) listMine(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	user, ok := fb.caller(r)
	if !ok {
		detail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	out := []domain.Vehicle{}
	for _, v := range fb.vehicles {
		if fb.owners[v.ID] == user {
			out = append(out, v)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (fb *fakeBackend) create(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	user, ok := fb.caller(r)
	if !ok {
		detail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	var in domain.VehicleInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		detail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	fb.nextID++
	v := domain.Vehicle{ID: fb.nextID, Brand: in.Brand, Model: in.Model, PricePerDay: in.PricePerDay, ImageURL: in.ImageURL}
	fb.vehicles = append(fb.vehicles, v)
	fb.owners[v.ID] = user
	writeJSON(w, http.StatusOK, v)
}

func (fb *fakeBackend) find(w http.ResponseWriter, r *http.Request) (int, bool) {
	user, ok := fb.caller(r)
	if !ok {
		detail(w, http.StatusUnauthorized, "Not authenticated")
		return 0, false
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		detail(w, http.StatusUnprocessableEntity, "invalid id")
		return 0, false
	}
	for i, v := range fb.vehicles {
		if v.ID != id {
			continue
		}
		if fb.owners[id] != user {
			detail(w, http.StatusForbidden, "Not enough permissions")
			return 0, false
		}
		return i, true
	}
	detail(w, http.StatusNotFound, "Vehicle not found")
	return 0, false
}

func (fb *fakeBackend) update(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	i, ok := fb.find(w, r)
	if !ok {
		return
	}
	var in domain.VehicleInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		detail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	id := fb.vehicles[i].ID
	fb.vehicles[i] = domain.Vehicle{ID: id, Brand: in.Brand, Model: in.Model, PricePerDay: in.PricePerDay, ImageURL: in.ImageURL}
	writeJSON(w, http.StatusOK, fb.vehicles[i])
}

func (fb *fakeBackend) remove(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	i, ok := fb.find(w, r)
	if !ok {
		return
	}
	delete(fb.owners, fb.vehicles[i].ID)
	fb.vehicles = append(fb.vehicles[:i], fb.vehicles[i+1:]...)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vehicle deleted successfully"})
}
