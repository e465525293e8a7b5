// File: services/discovery/manager.go
package discovery

import (
	"context"
	"sync"
	"time"

	"hobyhub/models"
	"hobyhub/services/location"
	"hobyhub/utils"

	"go.uber.org/zap"
)

// Session bundles one client's discovery pipeline: its filter and sort
// stores, the feed they drive, and the auto pager.
type Session struct {
	ID       string
	Filters  *FilterStore
	Sort     *SortStore
	Feed     *Feed
	Pager    *AutoPager
	Location *location.DefaultResolver
	lastSeen time.Time
}

// Manager hands out per-session pipelines, creating them lazily and sweeping
// idle ones.
type Manager struct {
	lister          ActivityLister
	geocoder        location.Geocoder
	defaultLocation string
	pageSize        int
	defaults        models.SortCriteria
	ttl             time.Duration
	logger          *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager builds a session manager. Sessions idle longer than ttl are
// dropped by the sweeper.
func NewManager(lister ActivityLister, geocoder location.Geocoder, defaultLocation string, pageSize int, defaults models.SortCriteria, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	m := &Manager{
		lister:          lister,
		geocoder:        geocoder,
		defaultLocation: defaultLocation,
		pageSize:        pageSize,
		defaults:        defaults,
		ttl:             ttl,
		logger:          utils.GetLogger(),
		sessions:        make(map[string]*Session),
	}
	go m.sweep()
	return m
}

// Get returns the session for the given id, creating and wiring it on first
// use.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		m.touch(sess)
		return sess
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[id]; ok {
		sess.lastSeen = time.Now()
		return sess
	}

	filters := NewFilterStore()
	sort := NewSortStore(m.defaults)
	feed := NewFeed(m.lister, m.pageSize, m.defaults)

	// Filter edits stay drafts until triggered; sort edits commit at once.
	filters.Subscribe(func(snap models.FilterSnapshot) {
		feed.OnFilterChange(context.Background(), snap)
	})
	sort.Subscribe(func(criteria models.SortCriteria) {
		feed.OnSortChange(context.Background(), criteria)
	})

	sess = &Session{
		ID:       id,
		Filters:  filters,
		Sort:     sort,
		Feed:     feed,
		Pager:    NewAutoPager(feed),
		Location: location.NewDefaultResolver(m.geocoder, m.defaultLocation),
		lastSeen: time.Now(),
	}
	m.sessions[id] = sess
	m.logger.Debug("Created discovery session", zap.String("session", id))
	return sess
}

func (m *Manager) touch(sess *Session) {
	m.mu.Lock()
	sess.lastSeen = time.Now()
	m.mu.Unlock()
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) sweep() {
	ticker := time.NewTicker(m.ttl / 2)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-m.ttl)
		m.mu.Lock()
		for id, sess := range m.sessions {
			if sess.lastSeen.Before(cutoff) {
				delete(m.sessions, id)
				m.logger.Debug("Swept idle discovery session", zap.String("session", id))
			}
		}
		m.mu.Unlock()
	}
}
