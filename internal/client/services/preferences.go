package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/codetracker/internal/client/repositories/preferences"
)

// NoticeSeenKey is the preferences key of the one-time notice flag.
const NoticeSeenKey = "notice_seen"

const noticeSeenValue = "1"

// PreferencesService holds the client's durable UI preferences.
type PreferencesService interface {
	NoticeSeen(ctx context.Context) (bool, error)
	DismissNotice(ctx context.Context) error
}

type preferencesService struct {
	repo preferences.Repository
}

// NewPreferencesService returns preferences backed by repo.
func NewPreferencesService(repo preferences.Repository) PreferencesService {
	return &preferencesService{repo: repo}
}

func (p *preferencesService) NoticeSeen(ctx context.Context) (bool, error) {
	v, ok, err := p.repo.Get(ctx, NoticeSeenKey)
	if err != nil {
		return false, fmt.Errorf("read notice flag: %w", err)
	}
	return ok && v == noticeSeenValue, nil
}

func (p *preferencesService) DismissNotice(ctx context.Context) error {
	if err := p.repo.Set(ctx, NoticeSeenKey, noticeSeenValue); err != nil {
		return fmt.Errorf("save notice flag: %w", err)
	}
	return nil
}

// MemoryPreferences keeps preferences in memory only.
type MemoryPreferences struct {
	mu   sync.Mutex
	seen bool
}

func (m *MemoryPreferences) NoticeSeen(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seen, nil
}

func (m *MemoryPreferences) DismissNotice(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = true
	return nil
}
