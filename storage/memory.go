package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/TillGrassi/My-Portfolio/models"
)

// MemoryStore keeps everything in-process. It backs the handler tests
// and the no-database dev mode.
type MemoryStore struct {
	mu             sync.RWMutex
	nextPaintingID uint
	nextMessageID  uint
	paintings      map[uint]models.Painting
	messages       []models.ContactMessage
	users          map[string]models.User
	now            func() time.Time
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		paintings: make(map[uint]models.Painting),
		users:     make(map[string]models.User),
		now:       time.Now,
	}
}

// ListPaintings returns all paintings, newest first.
func (m *MemoryStore) ListPaintings() ([]models.Painting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]models.Painting, 0, len(m.paintings))
	for _, p := range m.paintings {
		res = append(res, p)
	}
	sortNewestFirst(res)
	return res, nil
}

func sortNewestFirst(paintings []models.Painting) {
	sort.Slice(paintings, func(i, j int) bool {
		if !paintings[i].CreatedAt.Equal(paintings[j].CreatedAt) {
			return paintings[i].CreatedAt.After(paintings[j].CreatedAt)
		}
		return paintings[i].ID > paintings[j].ID
	})
}

// GetPainting returns a painting by id.
func (m *MemoryStore) GetPainting(id uint) (models.Painting, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.paintings[id]
	return p, ok, nil
}

// CreatePainting assigns an id and timestamps and stores the painting.
func (m *MemoryStore) CreatePainting(p models.Painting) (models.Painting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextPaintingID++
	p.ID = m.nextPaintingID
	p.CreatedAt = m.now()
	p.UpdatedAt = p.CreatedAt
	m.paintings[p.ID] = p
	return p, nil
}

// UpdatePainting merges the patch into an existing painting.
func (m *MemoryStore) UpdatePainting(id uint, patch PaintingPatch) (models.Painting, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.paintings[id]
	if !ok {
		return models.Painting{}, false, nil
	}
	patch.apply(&p)
	p.UpdatedAt = m.now()
	m.paintings[id] = p
	return p, true, nil
}

// DeletePainting removes a painting; unknown ids are a no-op.
func (m *MemoryStore) DeletePainting(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.paintings, id)
	return nil
}

// CreateContactMessage assigns an id and timestamp and stores the inquiry.
func (m *MemoryStore) CreateContactMessage(msg models.ContactMessage) (models.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextMessageID++
	msg.ID = m.nextMessageID
	msg.CreatedAt = m.now()
	m.messages = append(m.messages, msg)
	return msg, nil
}

// ListContactMessages returns all inquiries, newest first.
func (m *MemoryStore) ListContactMessages() ([]models.ContactMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]models.ContactMessage, 0, len(m.messages))
	for i := len(m.messages) - 1; i >= 0; i-- {
		res = append(res, m.messages[i])
	}
	return res, nil
}

// GetUser returns an identity record by id.
func (m *MemoryStore) GetUser(id string) (models.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	return u, ok, nil
}

// UpsertUser inserts or merges an identity record keyed by id.
func (m *MemoryStore) UpsertUser(u models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.users[u.ID]; ok {
		u.CreatedAt = existing.CreatedAt
	} else {
		u.CreatedAt = m.now()
	}
	u.UpdatedAt = m.now()
	m.users[u.ID] = u
	return u, nil
}
