package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/errors"
	mongorepo "github.com/events-directory/internal/repository/mongo"
	"github.com/events-directory/internal/repository/mongo/testhelpers"
)

// LifecycleRepositorySuite проверяет массовые запросы ежедневного
// обслуживания на настоящей MongoDB (TEST_MONGO_URI)
type LifecycleRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	events repository.EventRepository
	users  repository.UserRepository
	ctx    context.Context
}

func (s *LifecycleRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := s.testDB.DB.EnsureIndexes(context.Background())
	s.Require().NoError(err, "Failed to ensure indexes")

	s.events = mongorepo.NewEventRepository(s.testDB.DB, s.testDB.Logger)
	s.users = mongorepo.NewUserRepository(s.testDB.DB, s.testDB.Logger)
}

func (s *LifecycleRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *LifecycleRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *LifecycleRepositorySuite) seedEvent(slug string, end time.Time, active bool) *domain.Event {
	event := &domain.Event{
		NameEn:      "Seed " + slug,
		VenueID:     primitive.NewObjectID(),
		EventTypeID: primitive.NewObjectID(),
		StartDate:   end.Add(-3 * time.Hour),
		EndDate:     end,
		PriceType:   domain.PriceFree,
		IsActive:    active,
		Slug:        slug,
	}
	s.Require().NoError(s.events.Create(s.ctx, event))
	return event
}

func (s *LifecycleRepositorySuite) TestDeactivatePast_OnlyPastActiveEvents() {
	now := time.Now().UTC()

	past := s.seedEvent("past-gig", now.Add(-time.Hour), true)
	pastInactive := s.seedEvent("past-gig-off", now.Add(-2*time.Hour), false)
	ongoing := s.seedEvent("ongoing-gig", now.Add(time.Hour), true)
	future := s.seedEvent("future-gig", now.Add(48*time.Hour), true)

	modified, err := s.events.DeactivatePast(s.ctx, now)
	s.NoError(err)
	s.Equal(int64(1), modified, "only the past active event matches the filter")

	got, err := s.events.GetBySlug(s.ctx, past.Slug)
	s.NoError(err)
	s.False(got.IsActive)

	for _, slug := range []string{ongoing.Slug, future.Slug} {
		got, err = s.events.GetBySlug(s.ctx, slug)
		s.NoError(err)
		s.True(got.IsActive, slug)
	}

	got, err = s.events.GetBySlug(s.ctx, pastInactive.Slug)
	s.NoError(err)
	s.False(got.IsActive)
}

func (s *LifecycleRepositorySuite) TestDeactivatePast_SecondRunIsNoop() {
	now := time.Now().UTC()
	s.seedEvent("past-gig", now.Add(-time.Hour), true)

	modified, err := s.events.DeactivatePast(s.ctx, now)
	s.NoError(err)
	s.Equal(int64(1), modified)

	modified, err = s.events.DeactivatePast(s.ctx, now)
	s.NoError(err)
	s.Zero(modified, "repeated pass must not touch already deactivated events")
}

func (s *LifecycleRepositorySuite) seedUser(email string, active bool, tokenCreated *time.Time) *domain.User {
	user := &domain.User{
		Email:       email,
		Password:    "$2a$10$seedseedseedseedseedse.seedseedseedseedseedseedseedse",
		Role:        domain.RoleUser,
		IsActive:    active,
		DefaultLang: "en",
		CreatedAt:   time.Now().UTC(),
	}
	if tokenCreated != nil {
		token := "confirm-" + email
		user.ConfirmationToken = &token
		user.ConfirmationTokenCreated = tokenCreated
	}
	s.Require().NoError(s.users.Create(s.ctx, user))
	return user
}

func (s *LifecycleRepositorySuite) TestDeleteUnconfirmedBefore() {
	now := time.Now().UTC()
	stale := now.Add(-domain.ConfirmationGracePeriod - time.Hour)
	fresh := now.Add(-time.Hour)

	s.seedUser("stale@example.com", false, &stale)
	s.seedUser("fresh@example.com", false, &fresh)
	s.seedUser("confirmed@example.com", true, nil)

	deleted, err := s.users.DeleteUnconfirmedBefore(s.ctx, now.Add(-domain.ConfirmationGracePeriod))
	s.NoError(err)
	s.Equal(int64(1), deleted)

	_, err = s.users.GetByEmail(s.ctx, "stale@example.com")
	s.Error(err)
	s.True(errors.IsCode(err, errors.CodeNotFound))

	for _, email := range []string{"fresh@example.com", "confirmed@example.com"} {
		got, err := s.users.GetByEmail(s.ctx, email)
		s.NoError(err)
		s.NotNil(got, email)
	}
}

func (s *LifecycleRepositorySuite) TestDeleteUnconfirmedBefore_SecondRunIsNoop() {
	now := time.Now().UTC()
	stale := now.Add(-domain.ConfirmationGracePeriod - time.Hour)
	s.seedUser("stale@example.com", false, &stale)

	cutoff := now.Add(-domain.ConfirmationGracePeriod)

	deleted, err := s.users.DeleteUnconfirmedBefore(s.ctx, cutoff)
	s.NoError(err)
	s.Equal(int64(1), deleted)

	deleted, err = s.users.DeleteUnconfirmedBefore(s.ctx, cutoff)
	s.NoError(err)
	s.Zero(deleted)
}

func TestLifecycleRepositorySuite(t *testing.T) {
	suite.Run(t, new(LifecycleRepositorySuite))
}
