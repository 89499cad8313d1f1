package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/oclock/event_backend/internal/apperrors"
	"github.com/oclock/event_backend/internal/core/domain"
	"github.com/oclock/event_backend/internal/core/services"
	"github.com/oclock/event_backend/internal/dto"

	portssvc "github.com/oclock/event_backend/internal/core/ports/services"
)

type EventServiceTestSuite struct {
	suite.Suite
	mockEventRepo    *MockEventRepository
	mockUserRepo     *MockUserRepository
	mockLocationRepo *MockLocationRepository
	mockSponsorRepo  *MockSponsorRepository
	service          portssvc.EventSvcFacade
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockLocationRepo = new(MockLocationRepository)
	suite.mockSponsorRepo = new(MockSponsorRepository)
	suite.service = services.NewEventService(
		suite.mockEventRepo,
		suite.mockUserRepo,
		suite.mockLocationRepo,
		suite.mockSponsorRepo,
		fakeTxManager{},
	)
}

func manager(email string) *domain.User {
	return &domain.User{
		UserID:    "mgr-1",
		Email:     email,
		FirstName: "Grace",
		LastName:  "Hopper",
		Role:      domain.RoleManager,
		IsActive:  true,
	}
}

func sampleEvent(id int64, mgr *domain.User) *domain.Event {
	return &domain.Event{
		ID:          id,
		Title:       "Harbor Cleanup",
		Description: "Community cleanup day",
		CreatedAt:   time.Now(),
		StartDate:   time.Now().Add(24 * time.Hour),
		EndDate:     time.Now().Add(30 * time.Hour),
		Price:       decimal.NewFromInt(0),
		Category:    domain.CategorySocialActivities,
		Manager:     *mgr,
		Location:    domain.EventLocation{ID: 7, Name: "Harbor", City: "Nantes", Country: "France"},
		Sponsors:    []domain.Sponsor{{ID: 3, Name: "Acme"}},
	}
}

func (suite *EventServiceTestSuite) TestCreateEvent_ReusesLocationAndSponsorByID() {
	ctx := context.Background()
	mgr := manager("grace@example.com")
	locationID := int64(7)
	sponsorID := int64(3)

	req := dto.CreateEventRequest{
		Title:       "Harbor Cleanup",
		Description: "Community cleanup day",
		StartDate:   time.Now().Add(24 * time.Hour),
		EndDate:     time.Now().Add(30 * time.Hour),
		Category:    "Social Activities",
		Location:    dto.EventLocationDto{ID: &locationID},
		Sponsors:    []dto.SponsorDto{{ID: &sponsorID}},
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, mgr.Email).Return(mgr, nil).Once()
	suite.mockLocationRepo.On("FindLocationByID", ctx, locationID).
		Return(&domain.EventLocation{ID: locationID, Name: "Harbor"}, nil).Once()
	suite.mockSponsorRepo.On("FindSponsorByID", ctx, sponsorID).
		Return(&domain.Sponsor{ID: sponsorID, Name: "Acme"}, nil).Once()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Location.ID == locationID && len(e.Sponsors) == 1 && e.Sponsors[0].ID == sponsorID
	})).Return(int64(42), nil).Once()

	resp, err := suite.service.CreateEvent(ctx, req, mgr.Email)

	suite.Require().NoError(err)
	suite.Equal(int64(42), resp.ID)
	suite.Equal("Social Activities", resp.Category)
	suite.Equal("Grace Hopper", resp.Manager)
	// No new rows were created for referenced entities
	suite.mockLocationRepo.AssertNotCalled(suite.T(), "SaveLocation", mock.Anything, mock.Anything)
	suite.mockSponsorRepo.AssertNotCalled(suite.T(), "SaveSponsor", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestCreateEvent_CreatesMissingLocationAndSponsors() {
	ctx := context.Background()
	mgr := manager("grace@example.com")

	req := dto.CreateEventRequest{
		Title:       "Pottery Night",
		Description: "Hands-on workshop",
		StartDate:   time.Now().Add(24 * time.Hour),
		EndDate:     time.Now().Add(27 * time.Hour),
		Category:    "Art & Culture",
		Location:    dto.EventLocationDto{Name: "Studio 12", City: "Lyon", Country: "France"},
		Sponsors:    []dto.SponsorDto{{Name: "ClayCo"}},
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, mgr.Email).Return(mgr, nil).Once()
	suite.mockLocationRepo.On("SaveLocation", ctx, mock.MatchedBy(func(l domain.EventLocation) bool {
		return l.Name == "Studio 12"
	})).Return(int64(11), nil).Once()
	suite.mockSponsorRepo.On("SaveSponsor", ctx, mock.MatchedBy(func(s domain.Sponsor) bool {
		return s.Name == "ClayCo"
	})).Return(int64(21), nil).Once()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Location.ID == 11 && len(e.Sponsors) == 1 && e.Sponsors[0].ID == 21
	})).Return(int64(43), nil).Once()

	resp, err := suite.service.CreateEvent(ctx, req, mgr.Email)

	suite.Require().NoError(err)
	suite.Equal(int64(43), resp.ID)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestCreateEvent_UnknownCategory() {
	ctx := context.Background()
	mgr := manager("grace@example.com")
	suite.mockUserRepo.On("FindUserByEmail", ctx, mgr.Email).Return(mgr, nil).Once()

	_, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{
		Title:       "X",
		Description: "Y",
		StartDate:   time.Now(),
		EndDate:     time.Now().Add(time.Hour),
		Category:    "Underwater Basket Weaving",
	}, mgr.Email)

	suite.ErrorIs(err, apperrors.ErrFunctional)
	suite.Contains(err.Error(), "does not exist")
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestGetEventByID_NotFound() {
	ctx := context.Background()
	suite.mockEventRepo.On("FindEventByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetEventByID(ctx, 99)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "event not found with id: 99")
}

func (suite *EventServiceTestSuite) TestGetEventsByManager_UnknownManagerYieldsEmptySet() {
	ctx := context.Background()
	suite.mockEventRepo.On("FindEventsByManager", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	events, err := suite.service.GetEventsByManager(ctx, "nobody")

	suite.Require().NoError(err)
	suite.Empty(events)
}

func (suite *EventServiceTestSuite) TestGetEventsByDateRange_MissingBound() {
	start := time.Now()
	_, err := suite.service.GetEventsByDateRange(context.Background(), &start, nil)

	suite.ErrorIs(err, apperrors.ErrFunctional)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "FindEventsByStartDateBetween", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestGetEventsByDateRange_StartAfterEnd() {
	start := time.Now().Add(time.Hour)
	end := time.Now()
	_, err := suite.service.GetEventsByDateRange(context.Background(), &start, &end)

	suite.ErrorIs(err, apperrors.ErrFunctional)
	suite.Contains(err.Error(), "startDate must be before endDate")
	suite.mockEventRepo.AssertNotCalled(suite.T(), "FindEventsByStartDateBetween", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestUpdateEventByID_PartialPatch() {
	ctx := context.Background()
	mgr := manager("grace@example.com")
	event := sampleEvent(42, mgr)
	newTitle := "Harbor Cleanup 2.0"

	suite.mockEventRepo.On("FindEventByID", ctx, int64(42)).Return(event, nil).Once()
	suite.mockEventRepo.On("UpdateEvent", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Title == newTitle && e.Description == event.Description
	})).Return(nil).Once()

	resp, err := suite.service.UpdateEventByID(ctx, 42, dto.UpdateEventRequest{Title: &newTitle})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestUpdateSponsors_RejectsUnassociatedSponsor() {
	ctx := context.Background()
	mgr := manager("grace@example.com")
	event := sampleEvent(42, mgr) // associated sponsor id is 3
	strangerID := int64(8)

	suite.mockEventRepo.On("FindEventByID", ctx, int64(42)).Return(event, nil).Once()
	suite.mockSponsorRepo.On("FindSponsorByID", ctx, strangerID).
		Return(&domain.Sponsor{ID: strangerID, Name: "Stranger"}, nil).Once()

	_, err := suite.service.UpdateSponsors(ctx, 42, []dto.SponsorDto{{ID: &strangerID, Name: "Stranger"}})

	suite.ErrorIs(err, apperrors.ErrFunctional)
	suite.Contains(err.Error(), "not associated with this event")
	suite.mockSponsorRepo.AssertNotCalled(suite.T(), "UpdateSponsor", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestUpdateSponsors_RefreshesAssociatedSponsor() {
	ctx := context.Background()
	mgr := manager("grace@example.com")
	event := sampleEvent(42, mgr)
	sponsorID := int64(3)

	suite.mockEventRepo.On("FindEventByID", ctx, int64(42)).Return(event, nil).Twice()
	suite.mockSponsorRepo.On("FindSponsorByID", ctx, sponsorID).
		Return(&domain.Sponsor{ID: sponsorID, Name: "Acme"}, nil).Once()
	suite.mockSponsorRepo.On("UpdateSponsor", ctx, mock.MatchedBy(func(s domain.Sponsor) bool {
		return s.ID == sponsorID && s.Name == "Acme Refreshed"
	})).Return(nil).Once()
	suite.mockEventRepo.On("ReplaceEventSponsors", ctx, int64(42), []int64{sponsorID}).Return(nil).Once()

	resp, err := suite.service.UpdateSponsors(ctx, 42, []dto.SponsorDto{{ID: &sponsorID, Name: "Acme Refreshed"}})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.mockSponsorRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestAddSponsors_UnionsIntoSet() {
	ctx := context.Background()
	mgr := manager("grace@example.com")
	event := sampleEvent(42, mgr)

	suite.mockEventRepo.On("FindEventByID", ctx, int64(42)).Return(event, nil).Twice()
	suite.mockSponsorRepo.On("SaveSponsor", ctx, mock.MatchedBy(func(s domain.Sponsor) bool {
		return s.Name == "Newcomer"
	})).Return(int64(9), nil).Once()
	suite.mockEventRepo.On("AddEventSponsors", ctx, int64(42), []int64{9}).Return(nil).Once()

	_, err := suite.service.AddSponsorsToEvent(ctx, 42, []dto.SponsorDto{{Name: "Newcomer"}})

	suite.Require().NoError(err)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestRemoveSponsors_UnknownSponsor() {
	ctx := context.Background()
	mgr := manager("grace@example.com")
	event := sampleEvent(42, mgr)

	suite.mockEventRepo.On("FindEventByID", ctx, int64(42)).Return(event, nil).Once()
	suite.mockSponsorRepo.On("FindSponsorByID", ctx, int64(77)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RemoveSponsorsFromEvent(ctx, 42, []int64{77})

	suite.ErrorIs(err, apperrors.ErrFunctional)
	suite.Contains(err.Error(), "sponsor with id 77 does not exist")
	suite.mockEventRepo.AssertNotCalled(suite.T(), "RemoveEventSponsors", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestUpdateEventLocation_MergesExistingRow() {
	ctx := context.Background()
	mgr := manager("grace@example.com")
	event := sampleEvent(42, mgr)
	locationID := int64(7)

	suite.mockEventRepo.On("FindEventByID", ctx, int64(42)).Return(event, nil).Twice()
	suite.mockLocationRepo.On("FindLocationByID", ctx, locationID).
		Return(&domain.EventLocation{ID: locationID, Name: "Harbor", City: "Nantes", Country: "France"}, nil).Once()
	suite.mockLocationRepo.On("UpdateLocation", ctx, mock.MatchedBy(func(l domain.EventLocation) bool {
		// Supplied name overlays; untouched fields survive
		return l.ID == locationID && l.Name == "North Harbor" && l.City == "Nantes"
	})).Return(nil).Once()
	suite.mockEventRepo.On("UpdateEventLocationRef", ctx, int64(42), locationID).Return(nil).Once()

	_, err := suite.service.UpdateEventLocation(ctx, 42, dto.EventLocationDto{ID: &locationID, Name: "North Harbor"})

	suite.Require().NoError(err)
	suite.mockLocationRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestUpdateEventLocation_CreatesWhenNoID() {
	ctx := context.Background()
	mgr := manager("grace@example.com")
	event := sampleEvent(42, mgr)

	suite.mockEventRepo.On("FindEventByID", ctx, int64(42)).Return(event, nil).Twice()
	suite.mockLocationRepo.On("SaveLocation", ctx, mock.MatchedBy(func(l domain.EventLocation) bool {
		return l.Name == "New Venue"
	})).Return(int64(30), nil).Once()
	suite.mockEventRepo.On("UpdateEventLocationRef", ctx, int64(42), int64(30)).Return(nil).Once()

	_, err := suite.service.UpdateEventLocation(ctx, 42, dto.EventLocationDto{Name: "New Venue"})

	suite.Require().NoError(err)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestDeleteManagerEvent_RefusesNonOwner() {
	ctx := context.Background()
	owner := manager("owner@example.com")
	event := sampleEvent(42, owner)

	suite.mockEventRepo.On("FindEventByID", ctx, int64(42)).Return(event, nil).Once()

	err := suite.service.DeleteManagerEventByID(ctx, 42, "impostor@example.com")

	suite.ErrorIs(err, apperrors.ErrBadCredentials)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "DeleteEventByID", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestDeleteManagerEvent_OwnerSucceeds() {
	ctx := context.Background()
	owner := manager("owner@example.com")
	event := sampleEvent(42, owner)

	suite.mockEventRepo.On("FindEventByID", ctx, int64(42)).Return(event, nil).Once()
	suite.mockEventRepo.On("DeleteEventByID", ctx, int64(42)).Return(nil).Once()

	err := suite.service.DeleteManagerEventByID(ctx, 42, owner.Email)

	suite.Require().NoError(err)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestDeleteEventAsAdmin_IgnoresOwnership() {
	ctx := context.Background()
	owner := manager("owner@example.com")
	event := sampleEvent(42, owner)

	suite.mockEventRepo.On("FindEventByID", ctx, int64(42)).Return(event, nil).Once()
	suite.mockEventRepo.On("DeleteEventByID", ctx, int64(42)).Return(nil).Once()

	err := suite.service.DeleteEventByID(ctx, 42)

	suite.Require().NoError(err)
}

func (suite *EventServiceTestSuite) TestGetEventsByCategory_UnknownDisplayName() {
	_, err := suite.service.GetEventsByCategory(context.Background(), "Nonsense")

	suite.ErrorIs(err, apperrors.ErrFunctional)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "FindEventsByCategory", mock.Anything, mock.Anything)
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
