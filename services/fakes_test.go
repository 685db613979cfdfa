package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/Dosada05/micro-tournaments/repositories"
	"github.com/Dosada05/micro-tournaments/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var errStore = errors.New("store is unavailable")

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

type fakePlayerRepo struct {
	mu        sync.Mutex
	players   []models.Player
	listErr   error
	countErr  error
	createErr error
	updateErr error
}

func (r *fakePlayerRepo) Create(_ context.Context, p *models.Player) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.players {
		if existing.Email == p.Email {
			return repositories.ErrPlayerEmailConflict
		}
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.players = append(r.players, *p)
	return nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (r *fakePlayerRepo) GetByEmail(_ context.Context, email string) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.Email == email {
			p := p
			return &p, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (r *fakePlayerRepo) List(_ context.Context) ([]models.Player, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Player(nil), r.players...), nil
}

func (r *fakePlayerRepo) Count(_ context.Context) (int, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players), nil
}

func (r *fakePlayerRepo) UpdateAvatarKey(_ context.Context, id uuid.UUID, key *string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.players {
		if r.players[i].ID == id {
			r.players[i].AvatarKey = key
			return nil
		}
	}
	return repositories.ErrPlayerNotFound
}

type fakeTournamentRepo struct {
	mu           sync.Mutex
	tournaments  []models.Tournament
	listErr      error
	incrementErr error
	lastFilter   repositories.ListTournamentsFilter
}

func (r *fakeTournamentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tournaments {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, repositories.ErrTournamentNotFound
}

func (r *fakeTournamentRepo) List(_ context.Context, f repositories.ListTournamentsFilter) ([]models.Tournament, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = f

	var out []models.Tournament
	for _, t := range r.tournaments {
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if f.StartsAfter != nil && !t.StartDate.After(*f.StartsAfter) {
			continue
		}
		if f.StartsBefore != nil && !t.StartDate.Before(*f.StartsBefore) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if f.Order == repositories.StartDateAsc {
			return out[i].StartDate.Before(out[j].StartDate)
		}
		return out[i].StartDate.After(out[j].StartDate)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *fakeTournamentRepo) IncrementPlayers(_ context.Context, _ repositories.SQLExecutor, id uuid.UUID) error {
	if r.incrementErr != nil {
		return r.incrementErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tournaments {
		t := &r.tournaments[i]
		if t.ID != id {
			continue
		}
		if t.Status != models.TournamentUpcoming || t.IsFull() {
			return repositories.ErrTournamentNotJoinable
		}
		t.CurrentPlayers++
		return nil
	}
	return repositories.ErrTournamentNotJoinable
}

// fakeMatchRepo keeps matches in insertion order; Desc reverses it.
type fakeMatchRepo struct {
	mu      sync.Mutex
	matches []models.Match
	listErr error
	calls   int
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.matches {
		if m.ID == id {
			m := m
			return &m, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) List(_ context.Context, f repositories.ListMatchesFilter) ([]models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.listErr != nil {
		return nil, r.listErr
	}

	var out []models.Match
	for _, m := range r.matches {
		if f.TournamentID != nil && m.TournamentID != *f.TournamentID {
			continue
		}
		if f.WinnerID != nil && !m.WonBy(*f.WinnerID) {
			continue
		}
		if f.PlayerID != nil && !m.HasPlayer(*f.PlayerID) {
			continue
		}
		if f.Status != nil && m.Status != *f.Status {
			continue
		}
		if f.ScheduledAfter != nil && (m.ScheduledTime == nil || !m.ScheduledTime.After(*f.ScheduledAfter)) {
			continue
		}
		out = append(out, m)
	}
	if f.Desc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

type fakeRegistrationRepo struct {
	mu        sync.Mutex
	regs      []models.Registration
	createErr error
	countErr  error
}

func (r *fakeRegistrationRepo) Create(_ context.Context, _ repositories.SQLExecutor, reg *models.Registration) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.regs {
		if existing.TournamentID == reg.TournamentID && existing.PlayerID == reg.PlayerID {
			return repositories.ErrRegistrationConflict
		}
	}
	reg.ID = uuid.New()
	reg.RegisteredAt = time.Now()
	r.regs = append(r.regs, *reg)
	return nil
}

func (r *fakeRegistrationRepo) CountByPlayer(_ context.Context, playerID uuid.UUID) (int, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, reg := range r.regs {
		if reg.PlayerID == playerID {
			n++
		}
	}
	return n, nil
}

// fakeTransactor runs fn without a transaction. A failing fn leaves the
// registrations it touched in place, so tests check the returned error only.
type fakeTransactor struct{}

func (fakeTransactor) WithinTx(_ context.Context, fn func(exec repositories.SQLExecutor) error) error {
	return fn(nil)
}

type fakeUploader struct {
	mu        sync.Mutex
	objects   map[string][]byte
	deleted   []string
	uploadErr error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string][]byte)}
}

func (u *fakeUploader) Upload(_ context.Context, key, _ string, reader io.Reader) (*storage.UploadResult, error) {
	if u.uploadErr != nil {
		return nil, u.uploadErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.objects[key] = buf.Bytes()
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(_ context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.objects, key)
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type fakeDenyList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	err     error
}

func newFakeDenyList() *fakeDenyList {
	return &fakeDenyList{revoked: make(map[string]time.Time)}
}

func (d *fakeDenyList) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[tokenID] = expiresAt
	return nil
}

func (d *fakeDenyList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.revoked[tokenID]
	return ok, nil
}

type fakeLeaderboardCache struct {
	mu      sync.Mutex
	entries []models.LeaderboardEntry
	hit     bool
	getErr  error
	sets    int
}

func (c *fakeLeaderboardCache) Get(_ context.Context) ([]models.LeaderboardEntry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.entries, c.hit, nil
}

func (c *fakeLeaderboardCache) Set(_ context.Context, entries []models.LeaderboardEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
	c.hit = true
	c.sets++
	return nil
}

func ptr[T any](v T) *T { return &v }

func completedMatch(tournamentID uuid.UUID, p1, p2, winner uuid.UUID, at time.Time) models.Match {
	s1, s2 := 2, 1
	if winner == p2 {
		s1, s2 = 1, 2
	}
	return models.Match{
		ID:           uuid.New(),
		TournamentID: tournamentID,
		Player1ID:    ptr(p1),
		Player2ID:    ptr(p2),
		Player1Score: ptr(s1),
		Player2Score: ptr(s2),
		WinnerID:     ptr(winner),
		Status:       models.MatchCompleted,
		CompletedAt:  ptr(at),
	}
}
