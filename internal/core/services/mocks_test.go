package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/oclock/event_backend/internal/core/domain"
	"github.com/oclock/event_backend/internal/dto"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

// --- Mock RefreshTokenRepository ---
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	var token *domain.RefreshToken
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.RefreshToken)
	}
	return token, args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

// --- Mock EventRepository ---
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) (int64, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID int64) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	var event *domain.Event
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.Event)
	}
	return event, args.Error(1)
}

func (m *MockEventRepository) FindAllEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) FindEventsByCategory(ctx context.Context, category domain.EventCategory) ([]domain.Event, error) {
	args := m.Called(ctx, category)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) FindEventsByLocation(ctx context.Context, locationID int64) ([]domain.Event, error) {
	args := m.Called(ctx, locationID)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) FindEventsByManager(ctx context.Context, managerID string) ([]domain.Event, error) {
	args := m.Called(ctx, managerID)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) FindEventsByStartDateBetween(ctx context.Context, start, end time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, start, end)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) ReplaceEventSponsors(ctx context.Context, eventID int64, sponsorIDs []int64) error {
	args := m.Called(ctx, eventID, sponsorIDs)
	return args.Error(0)
}

func (m *MockEventRepository) AddEventSponsors(ctx context.Context, eventID int64, sponsorIDs []int64) error {
	args := m.Called(ctx, eventID, sponsorIDs)
	return args.Error(0)
}

func (m *MockEventRepository) RemoveEventSponsors(ctx context.Context, eventID int64, sponsorIDs []int64) error {
	args := m.Called(ctx, eventID, sponsorIDs)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEventLocationRef(ctx context.Context, eventID int64, locationID int64) error {
	args := m.Called(ctx, eventID, locationID)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteEventByID(ctx context.Context, eventID int64) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// --- Mock EventLocationRepository ---
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) SaveLocation(ctx context.Context, location domain.EventLocation) (int64, error) {
	args := m.Called(ctx, location)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLocationRepository) FindLocationByID(ctx context.Context, locationID int64) (*domain.EventLocation, error) {
	args := m.Called(ctx, locationID)
	var location *domain.EventLocation
	if args.Get(0) != nil {
		location = args.Get(0).(*domain.EventLocation)
	}
	return location, args.Error(1)
}

func (m *MockLocationRepository) UpdateLocation(ctx context.Context, location domain.EventLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

// --- Mock SponsorRepository ---
type MockSponsorRepository struct {
	mock.Mock
}

func (m *MockSponsorRepository) SaveSponsor(ctx context.Context, sponsor domain.Sponsor) (int64, error) {
	args := m.Called(ctx, sponsor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSponsorRepository) FindSponsorByID(ctx context.Context, sponsorID int64) (*domain.Sponsor, error) {
	args := m.Called(ctx, sponsorID)
	var sponsor *domain.Sponsor
	if args.Get(0) != nil {
		sponsor = args.Get(0).(*domain.Sponsor)
	}
	return sponsor, args.Error(1)
}

func (m *MockSponsorRepository) UpdateSponsor(ctx context.Context, sponsor domain.Sponsor) error {
	args := m.Called(ctx, sponsor)
	return args.Error(0)
}

// --- Pass-through TxManager ---

// fakeTxManager runs the function directly; the transaction machinery
// is exercised by the repository layer, not these tests.
type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- Mock RefreshTokenSvcFacade ---
type MockRefreshTokenSvc struct {
	mock.Mock
}

func (m *MockRefreshTokenSvc) CreateRefreshToken(ctx context.Context, user *domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockRefreshTokenSvc) RefreshAccessToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	args := m.Called(ctx, refreshToken)
	var resp *dto.AuthResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.AuthResponse)
	}
	return resp, args.Error(1)
}

func (m *MockRefreshTokenSvc) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

// --- Mock EmailSender ---
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendVerificationEmail(ctx context.Context, email string, newEmail string) error {
	args := m.Called(ctx, email, newEmail)
	return args.Error(0)
}
