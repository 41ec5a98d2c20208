package repo

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"ecoentorno/internal/models"
)

// In-memory реализации хранилищ: режим без БД (database.driver пуст) и тесты.

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[int64]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[int64]models.User)}
}

func (m *MemoryUserStore) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.DocumentID]; ok {
		return ErrConflict
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	m.users[u.DocumentID] = *u
	return nil
}

func (m *MemoryUserStore) Get(_ context.Context, documentID int64) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[documentID]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemoryUserStore) List(_ context.Context, query string) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// регистр не важен, как у LIKE в MySQL с collation по умолчанию
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		if q == "" ||
			strings.Contains(strconv.FormatInt(u.DocumentID, 10), q) ||
			strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Surname), q) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DocumentID < out[j].DocumentID })
	return out, nil
}

func (m *MemoryUserStore) Update(_ context.Context, documentID int64, in UserUpdate) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[documentID]
	if !ok {
		return nil, ErrNotFound
	}
	u.Name, u.Surname, u.Role = in.Name, in.Surname, in.Role
	u.UpdatedAt = time.Now().UTC()
	m.users[documentID] = u
	return &u, nil
}

func (m *MemoryUserStore) Delete(_ context.Context, documentID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[documentID]; !ok {
		return ErrNotFound
	}
	delete(m.users, documentID)
	return nil
}

type MemoryCredentialStore struct {
	mu     sync.RWMutex
	nextID uint
	creds  map[int64]models.Credential
}

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{creds: make(map[int64]models.Credential)}
}

func (m *MemoryCredentialStore) Create(_ context.Context, c *models.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.creds[c.EmployeeID]; ok {
		return ErrConflict
	}
	m.nextID++
	now := time.Now().UTC()
	c.ID, c.CreatedAt, c.UpdatedAt = m.nextID, now, now
	m.creds[c.EmployeeID] = *c
	return nil
}

func (m *MemoryCredentialStore) GetByEmployeeID(_ context.Context, employeeID int64) (*models.Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.creds[employeeID]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *MemoryCredentialStore) List(_ context.Context) ([]models.Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Credential, 0, len(m.creds))
	for _, c := range m.creds {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func (m *MemoryCredentialStore) SetPasswordHash(_ context.Context, employeeID int64, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.creds[employeeID]
	if !ok {
		return ErrNotFound
	}
	c.PasswordHash = hash
	c.UpdatedAt = time.Now().UTC()
	m.creds[employeeID] = c
	return nil
}

func (m *MemoryCredentialStore) Delete(_ context.Context, employeeID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.creds[employeeID]; !ok {
		return ErrNotFound
	}
	delete(m.creds, employeeID)
	return nil
}

type MemoryWeightStore struct {
	mu      sync.RWMutex
	records []models.WeightRecord
}

func NewMemoryWeightStore() *MemoryWeightStore { return &MemoryWeightStore{} }

func (m *MemoryWeightStore) Create(_ context.Context, w *models.WeightRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w.ID = uint(len(m.records) + 1)
	w.CreatedAt = time.Now().UTC()
	m.records = append(m.records, *w)
	return nil
}

func (m *MemoryWeightStore) List(_ context.Context) ([]models.WeightRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.WeightRecord(nil), m.records...), nil
}

func (m *MemoryWeightStore) FirstByEmployee(_ context.Context, employeeID int64) (*models.WeightRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, w := range m.records {
		if w.EmployeeID == employeeID {
			return &w, nil
		}
	}
	return nil, ErrNotFound
}

type MemoryEPPStore struct {
	mu         sync.RWMutex
	deliveries []models.EPPDelivery
}

func NewMemoryEPPStore() *MemoryEPPStore { return &MemoryEPPStore{} }

func (m *MemoryEPPStore) Create(_ context.Context, d *models.EPPDelivery) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = uint(len(m.deliveries) + 1)
	d.CreatedAt = time.Now().UTC()
	m.deliveries = append(m.deliveries, *d)
	return nil
}

func (m *MemoryEPPStore) List(_ context.Context) ([]models.EPPDelivery, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.EPPDelivery(nil), m.deliveries...), nil
}

func (m *MemoryEPPStore) FirstByEmployee(_ context.Context, employeeID int64) (*models.EPPDelivery, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.deliveries {
		if d.EmployeeID == employeeID {
			return &d, nil
		}
	}
	return nil, ErrNotFound
}
