package service_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhidesai17/gigflow/internal/model"
	"github.com/abhidesai17/gigflow/internal/store"
)

// memStore implements the store contracts in memory. Conditional updates
// apply under a single mutex, giving the same atomicity guarantee the
// production store gets from single-row conditional UPDATEs.
type memStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
	gigs  map[uuid.UUID]model.Gig
	bids  map[uuid.UUID]model.Bid
	order []uuid.UUID
	clock time.Time

	// beforeBidCAS runs inside the lock right before a bid CAS applies,
	// letting tests interleave a competing mutation.
	beforeBidCAS func(s *memStore)

	failGigCAS error
	failReject error
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[uuid.UUID]model.User),
		gigs:  make(map[uuid.UUID]model.Gig),
		bids:  make(map[uuid.UUID]model.Bid),
		clock: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

// Users, Gigs and Bids expose the typed store views the services expect.
func (s *memStore) Users() store.UserStore { return memUserView{s} }
func (s *memStore) Gigs() store.GigStore   { return memGigView{s} }
func (s *memStore) Bids() store.BidStore   { return memBidView{s} }

type memUserView struct{ s *memStore }

func (v memUserView) Create(ctx context.Context, user *model.User) error {
	return v.s.CreateUser(ctx, user)
}

func (v memUserView) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return v.s.GetUserByID(ctx, id)
}

func (v memUserView) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return v.s.GetUserByEmail(ctx, email)
}

type memGigView struct{ s *memStore }

func (v memGigView) Create(ctx context.Context, gig *model.Gig) error {
	return v.s.CreateGig(ctx, gig)
}

func (v memGigView) GetByID(ctx context.Context, id uuid.UUID) (*model.Gig, error) {
	return v.s.GetGigByID(ctx, id)
}

func (v memGigView) ListOpen(ctx context.Context, search string) ([]model.Gig, error) {
	return v.s.ListOpenGigs(ctx, search)
}

func (v memGigView) CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to model.GigStatus) (*model.Gig, error) {
	return v.s.CompareAndSetGigStatus(ctx, id, from, to)
}

type memBidView struct{ s *memStore }

func (v memBidView) Create(ctx context.Context, bid *model.Bid) error {
	return v.s.CreateBid(ctx, bid)
}

func (v memBidView) GetByID(ctx context.Context, id uuid.UUID) (*model.Bid, error) {
	return v.s.GetBidByID(ctx, id)
}

func (v memBidView) ListForGig(ctx context.Context, gigID uuid.UUID) ([]model.Bid, error) {
	return v.s.ListBidsForGig(ctx, gigID)
}

func (v memBidView) CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to model.BidStatus) (*model.Bid, error) {
	return v.s.CompareAndSetBidStatus(ctx, id, from, to)
}

func (v memBidView) RejectOtherPending(ctx context.Context, gigID, winnerBidID uuid.UUID) (int64, error) {
	return v.s.RejectOtherPending(ctx, gigID, winnerBidID)
}

func (v memBidView) HasHired(ctx context.Context, gigID uuid.UUID) (bool, error) {
	return v.s.HasHired(ctx, gigID)
}

// UserStore

func (s *memStore) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return store.ErrDuplicate
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = s.tick()
	s.users[user.ID] = *user
	return nil
}

func (s *memStore) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &user, nil
}

func (s *memStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

// GigStore

func (s *memStore) CreateGig(ctx context.Context, gig *model.Gig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	gig.ID = uuid.New()
	gig.CreatedAt = s.tick()
	s.gigs[gig.ID] = *gig
	s.order = append(s.order, gig.ID)
	return nil
}

func (s *memStore) GetGigByID(ctx context.Context, id uuid.UUID) (*model.Gig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gig, ok := s.gigs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &gig, nil
}

func (s *memStore) ListOpenGigs(ctx context.Context, search string) ([]model.Gig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Gig
	for i := len(s.order) - 1; i >= 0; i-- {
		gig, ok := s.gigs[s.order[i]]
		if !ok || gig.Status != model.GigStatusOpen {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(gig.Title), strings.ToLower(search)) {
			continue
		}
		result = append(result, gig)
	}
	return result, nil
}

func (s *memStore) CompareAndSetGigStatus(ctx context.Context, id uuid.UUID, from, to model.GigStatus) (*model.Gig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGigCAS != nil {
		return nil, s.failGigCAS
	}
	gig, ok := s.gigs[id]
	if !ok || gig.Status != from {
		return nil, store.ErrStatusMismatch
	}
	gig.Status = to
	s.gigs[id] = gig
	return &gig, nil
}

// BidStore

func (s *memStore) CreateBid(ctx context.Context, bid *model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.bids {
		if existing.GigID == bid.GigID && existing.BidderID == bid.BidderID {
			return store.ErrDuplicate
		}
	}
	bid.ID = uuid.New()
	bid.CreatedAt = s.tick()
	s.bids[bid.ID] = *bid
	s.order = append(s.order, bid.ID)
	return nil
}

func (s *memStore) GetBidByID(ctx context.Context, id uuid.UUID) (*model.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bid, ok := s.bids[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &bid, nil
}

func (s *memStore) ListBidsForGig(ctx context.Context, gigID uuid.UUID) ([]model.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Bid
	for i := len(s.order) - 1; i >= 0; i-- {
		bid, ok := s.bids[s.order[i]]
		if !ok || bid.GigID != gigID {
			continue
		}
		result = append(result, bid)
	}
	return result, nil
}

func (s *memStore) CompareAndSetBidStatus(ctx context.Context, id uuid.UUID, from, to model.BidStatus) (*model.Bid, error) {
	s.mu.Lock()
	if s.beforeBidCAS != nil {
		hook := s.beforeBidCAS
		s.beforeBidCAS = nil
		hook(s)
	}
	defer s.mu.Unlock()
	bid, ok := s.bids[id]
	if !ok || bid.Status != from {
		return nil, store.ErrStatusMismatch
	}
	bid.Status = to
	s.bids[id] = bid
	return &bid, nil
}

func (s *memStore) RejectOtherPending(ctx context.Context, gigID, winnerBidID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failReject != nil {
		return 0, s.failReject
	}
	var changed int64
	for id, bid := range s.bids {
		if bid.GigID == gigID && id != winnerBidID && bid.Status == model.BidStatusPending {
			bid.Status = model.BidStatusRejected
			s.bids[id] = bid
			changed++
		}
	}
	return changed, nil
}

func (s *memStore) HasHired(ctx context.Context, gigID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bid := range s.bids {
		if bid.GigID == gigID && bid.Status == model.BidStatusHired {
			return true, nil
		}
	}
	return false, nil
}

// setBidStatus mutates a bid directly, simulating a change through some
// path outside the hire protocol.
func (s *memStore) setBidStatus(id uuid.UUID, status model.BidStatus) {
	bid := s.bids[id]
	bid.Status = status
	s.bids[id] = bid
}
