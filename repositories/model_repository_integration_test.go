//go:build integration

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"tonehunt-catalog/config"
	"tonehunt-catalog/models"
	"tonehunt-catalog/testinfra"
)

const (
	aliceID  = "p-alice"
	bobID    = "p-bob"
	viewerID = "p-viewer"

	twinID     = "m-twin"
	plexiID    = "m-plexi"
	screamID   = "m-screamer"
	inactiveID = "m-inactive"
	deletedID  = "m-deleted"
	privateID  = "m-private"
	klonID     = "m-klon"
)

const (
	ampsID   uint = 1
	pedalsID uint = 2
)

type ModelRepositoryTestSuite struct {
	suite.Suite
	ctx       context.Context
	container *testinfra.PostgresContainer
	db        *gorm.DB
	repo      ModelRepository
	now       time.Time

	viewerFavoriteID uint
}

func TestModelRepositorySuite(t *testing.T) {
	testinfra.SkipIfNoDocker(t)
	suite.Run(t, new(ModelRepositoryTestSuite))
}

func (s *ModelRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := testinfra.StartPostgres(s.ctx)
	s.Require().NoError(err)
	s.container = container

	db, err := config.OpenDB(container.Config)
	s.Require().NoError(err)
	s.db = db
	s.repo = NewModelRepository(db)
}

func (s *ModelRepositoryTestSuite) TearDownSuite() {
	config.CloseDB(s.db)
	if s.container != nil {
		testinfra.CleanupContainer(s.T(), s.ctx, s.container)
	}
}

func (s *ModelRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec(
		"TRUNCATE TABLE favorites, model_downloads, follows, models, categories, profiles, counts RESTART IDENTITY CASCADE",
	).Error)
	s.now = time.Now().UTC()
	s.seed()
}

func (s *ModelRepositoryTestSuite) daysAgo(n int) time.Time {
	return s.now.AddDate(0, 0, -n)
}

func (s *ModelRepositoryTestSuite) seed() {
	db := s.db
	alice, bob, viewer := "alice", "bob", "viewer"

	s.Require().NoError(db.Create(&[]models.Profile{
		{ID: aliceID, Username: &alice},
		{ID: bobID, Username: &bob},
		{ID: viewerID, Username: &viewer},
	}).Error)
	s.Require().NoError(db.Create(&[]models.Category{
		{ID: ampsID, Title: "Amp", Slug: "amps", PluralTitle: "Amps", DisplayOrder: 1},
		{ID: pedalsID, Title: "Pedal", Slug: "pedals", PluralTitle: "Pedals", DisplayOrder: 2},
	}).Error)

	s.Require().NoError(db.Create(&[]models.Model{
		{ID: twinID, Title: "Fender Twin Reverb", ProfileID: aliceID, CategoryID: ampsID,
			Tags: []string{"clean", "fender"}, CreatedAt: s.daysAgo(1)},
		{ID: plexiID, Title: "Marshall Plexi", ProfileID: bobID, CategoryID: ampsID,
			Tags: []string{"crunch"}, CreatedAt: s.daysAgo(40)},
		{ID: screamID, Title: "Tube Screamer", Description: "classic green overdrive", ProfileID: bobID,
			CategoryID: pedalsID, Tags: []string{"overdrive", "clean"}, CreatedAt: s.daysAgo(2)},
		{ID: inactiveID, Title: "Inactive Amp", ProfileID: aliceID, CategoryID: ampsID, CreatedAt: s.daysAgo(1)},
		{ID: deletedID, Title: "Deleted Amp", ProfileID: aliceID, CategoryID: ampsID, Deleted: true, CreatedAt: s.daysAgo(1)},
		{ID: privateID, Title: "Private Amp", ProfileID: aliceID, CategoryID: ampsID, Private: true, CreatedAt: s.daysAgo(1)},
		{ID: klonID, Title: "Klon Centaur", Description: "transparent overdrive klon", ProfileID: aliceID,
			CategoryID: pedalsID, Tags: []string{"overdrive"}, CreatedAt: s.daysAgo(3)},
	}).Error)
	// active defaults to true on insert, so switch it off afterwards
	s.Require().NoError(db.Model(&models.Model{}).Where("id = ?", inactiveID).Update("active", false).Error)

	favorites := []models.Favorite{
		{ModelID: twinID, ProfileID: bobID, CreatedAt: s.daysAgo(20)},
		{ModelID: twinID, ProfileID: aliceID, CreatedAt: s.daysAgo(20)},
		{ModelID: plexiID, ProfileID: aliceID, CreatedAt: s.daysAgo(2)},
		{ModelID: inactiveID, ProfileID: bobID, CreatedAt: s.daysAgo(1)},
		{ModelID: deletedID, ProfileID: bobID, CreatedAt: s.daysAgo(1)},
		{ModelID: privateID, ProfileID: bobID, CreatedAt: s.daysAgo(1)},
		{ModelID: klonID, ProfileID: bobID, CreatedAt: s.daysAgo(1), Deleted: true},
	}
	for i := 0; i < 5; i++ {
		favorites = append(favorites, models.Favorite{ModelID: screamID, ProfileID: aliceID, CreatedAt: s.daysAgo(30)})
	}
	s.Require().NoError(db.Create(&favorites).Error)

	viewerFavorite := models.Favorite{ModelID: twinID, ProfileID: viewerID, CreatedAt: s.daysAgo(1)}
	s.Require().NoError(db.Create(&viewerFavorite).Error)
	s.viewerFavoriteID = viewerFavorite.ID

	s.Require().NoError(db.Create(&[]models.ModelDownload{
		{ID: uuid.NewString(), ModelID: twinID},
		{ID: uuid.NewString(), ModelID: twinID},
		{ID: uuid.NewString(), ModelID: klonID},
		{ID: uuid.NewString(), ModelID: klonID, Deleted: true},
	}).Error)

	s.Require().NoError(db.Create(&models.Follow{ProfileID: viewerID, TargetID: aliceID}).Error)
}

func listQuery() models.ModelQuery {
	return models.ModelQuery{Limit: models.DefaultLimit, Sort: models.SortCreatedAt, Direction: models.SortDesc}
}

func ids(page *models.ModelPage) []string {
	out := make([]string, len(page.Data))
	for i, row := range page.Data {
		out[i] = row.ID
	}
	return out
}

func (s *ModelRepositoryTestSuite) list(q models.ModelQuery) *models.ModelPage {
	page, err := s.repo.List(s.ctx, q)
	s.Require().NoError(err)
	return page
}

func (s *ModelRepositoryTestSuite) TestListDefaultExcludesHiddenModels() {
	page := s.list(listQuery())

	s.Equal(int64(4), page.Total)
	s.Equal([]string{twinID, screamID, klonID, plexiID}, ids(page))
}

func (s *ModelRepositoryTestSuite) TestListAllModeKeepsDeletedAndPrivateOut() {
	q := listQuery()
	q.IncludeInactive = true
	page := s.list(q)

	s.Equal(int64(5), page.Total)
	s.Contains(ids(page), inactiveID)
	s.NotContains(ids(page), deletedID)
	s.NotContains(ids(page), privateID)
}

func (s *ModelRepositoryTestSuite) TestListFilterConjunction() {
	q := listQuery()
	q.CategoryID = ampsID
	q.Tags = []string{"clean"}
	page := s.list(q)
	s.Equal(int64(1), page.Total)
	s.Equal([]string{twinID}, ids(page))

	q = listQuery()
	q.CategoryID = pedalsID
	q.Tags = []string{"overdrive", "missing"}
	page = s.list(q)
	s.Equal(int64(2), page.Total)
	s.ElementsMatch([]string{screamID, klonID}, ids(page))
}

func (s *ModelRepositoryTestSuite) TestListEmptyTagsIsNoop() {
	q := listQuery()
	q.Tags = []string{}
	s.Equal(int64(4), s.list(q).Total)
}

func (s *ModelRepositoryTestSuite) TestListOwnerFilters() {
	q := listQuery()
	q.Username = "bob"
	s.ElementsMatch([]string{plexiID, screamID}, ids(s.list(q)))

	q = listQuery()
	q.ProfileID = aliceID
	s.ElementsMatch([]string{twinID, klonID}, ids(s.list(q)))
}

func (s *ModelRepositoryTestSuite) TestListFollowing() {
	q := listQuery()
	q.FollowerID = viewerID
	page := s.list(q)

	s.Equal(int64(2), page.Total)
	s.Equal([]string{twinID, klonID}, ids(page))
}

func (s *ModelRepositoryTestSuite) TestListRecency() {
	since := s.daysAgo(7)
	q := listQuery()
	q.CreatedSince = &since
	page := s.list(q)

	s.Equal(int64(3), page.Total)
	s.NotContains(ids(page), plexiID)
}

func (s *ModelRepositoryTestSuite) TestListPaginationWindows() {
	full := ids(s.list(listQuery()))

	var paged []string
	for offset := 0; offset < 6; offset += 3 {
		q := listQuery()
		q.Offset = offset
		q.Limit = 3
		page := s.list(q)
		s.Equal(int64(4), page.Total)
		paged = append(paged, ids(page)...)
	}
	s.Equal(full, paged)

	q := listQuery()
	q.Offset = 10
	page := s.list(q)
	s.Equal(int64(4), page.Total)
	s.Empty(page.Data)
	s.NotNil(page.Data)
}

func (s *ModelRepositoryTestSuite) TestListSortByTitle() {
	q := listQuery()
	q.Sort = models.SortTitle
	q.Direction = models.SortAsc

	s.Equal([]string{twinID, klonID, plexiID, screamID}, ids(s.list(q)))
}

func (s *ModelRepositoryTestSuite) TestListPopular() {
	q := listQuery()
	q.Sort = models.SortPopular

	s.Equal([]string{screamID, twinID, plexiID, klonID}, ids(s.list(q)))
}

func (s *ModelRepositoryTestSuite) TestSearchOverridesSort() {
	q := listQuery()
	q.Sort = models.SortTitle
	q.Direction = models.SortAsc
	q.SearchTerms = []string{"overdrive"}
	page := s.list(q)

	// popularity ascending: klon has no live favorites, screamer has five
	s.Equal([]string{klonID, screamID}, ids(page))
}

func (s *ModelRepositoryTestSuite) TestSearchBranches() {
	q := listQuery()
	q.SearchTerms = []string{"Fender", "Twin"}
	s.Equal([]string{twinID}, ids(s.list(q)))

	q = listQuery()
	q.SearchTerms = []string{"Fender", "Plexi"}
	s.Empty(s.list(q).Data)

	q = listQuery()
	q.SearchTerms = []string{"ALICE"}
	s.Equal([]string{twinID, klonID}, ids(s.list(q)))

	q = listQuery()
	q.SearchTerms = []string{"100%"}
	s.Empty(s.list(q).Data)
}

func (s *ModelRepositoryTestSuite) TestListRowAggregates() {
	q := listQuery()
	q.ViewerID = viewerID
	page := s.list(q)

	rows := map[string]models.ModelRow{}
	for _, row := range page.Data {
		rows[row.ID] = row
	}

	twin := rows[twinID]
	s.Equal(models.EngagementCount{Favorites: 3, Downloads: 2}, twin.Count)
	s.Require().NotNil(twin.FavoriteID)
	s.Equal(s.viewerFavoriteID, *twin.FavoriteID)
	s.Equal("alice", *twin.Profile.Username)
	s.Equal("amps", twin.Category.Slug)
	s.Equal("Amps", twin.Category.PluralTitle)
	s.ElementsMatch([]string{"clean", "fender"}, []string(twin.Tags))

	klon := rows[klonID]
	s.Equal(models.EngagementCount{Favorites: 0, Downloads: 1}, klon.Count)
	s.Nil(klon.FavoriteID)

	s.Nil(rows[plexiID].FavoriteID)
}

func (s *ModelRepositoryTestSuite) TestListWithoutViewerHasNoFavorite() {
	for _, row := range s.list(listQuery()).Data {
		s.Nil(row.FavoriteID)
	}
}

func (s *ModelRepositoryTestSuite) trendingQuery() models.TrendingQuery {
	return models.TrendingQuery{Limit: models.DefaultLimit, FavoritedSince: s.now.Add(-models.TrendingWindow)}
}

func (s *ModelRepositoryTestSuite) TestTrendingWindowGatesAndAllTimeRanks() {
	page, err := s.repo.Trending(s.ctx, s.trendingQuery())
	s.Require().NoError(err)

	// screamer has more favorites but none in the window; klon's only recent
	// favorite is deleted
	s.Equal(int64(2), page.Total)
	s.Equal([]string{twinID, plexiID}, ids(page))
	s.Equal(int64(3), page.Data[0].Count.Favorites)
	s.Equal(int64(0), page.Data[1].Count.Downloads)
}

func (s *ModelRepositoryTestSuite) TestTrendingPagination() {
	q := s.trendingQuery()
	q.Offset = 1
	q.Limit = 1
	page, err := s.repo.Trending(s.ctx, q)
	s.Require().NoError(err)

	s.Equal(int64(2), page.Total)
	s.Equal([]string{plexiID}, ids(page))

	q.Offset = 5
	page, err = s.repo.Trending(s.ctx, q)
	s.Require().NoError(err)
	s.Equal(int64(2), page.Total)
	s.Empty(page.Data)
}

func (s *ModelRepositoryTestSuite) TestTrendingFilters() {
	q := s.trendingQuery()
	q.CategoryID = pedalsID
	page, err := s.repo.Trending(s.ctx, q)
	s.Require().NoError(err)
	s.Equal(int64(0), page.Total)

	q = s.trendingQuery()
	q.Tags = []string{"crunch"}
	q.ViewerID = viewerID
	page, err = s.repo.Trending(s.ctx, q)
	s.Require().NoError(err)
	s.Equal([]string{plexiID}, ids(page))
	s.Nil(page.Data[0].FavoriteID)
}

func (s *ModelRepositoryTestSuite) TestTrendingViewerFavorite() {
	q := s.trendingQuery()
	q.ViewerID = viewerID
	page, err := s.repo.Trending(s.ctx, q)
	s.Require().NoError(err)

	s.Require().NotNil(page.Data[0].FavoriteID)
	s.Equal(s.viewerFavoriteID, *page.Data[0].FavoriteID)
}

func (s *ModelRepositoryTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.repo.List(ctx, listQuery())
	s.ErrorIs(err, context.Canceled)
}

func (s *ModelRepositoryTestSuite) TestLookups() {
	s.Require().NoError(s.db.Create(&[]models.Counts{{Name: "amps", Count: 2}, {Name: "pedals", Count: 3}}).Error)

	counts, err := NewCountsRepository(s.db).GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(counts, 2)

	categories := NewCategoryRepository(s.db)
	active, err := categories.GetActive(s.ctx)
	s.Require().NoError(err)
	s.Equal("amps", active[0].Slug)
	s.Equal("pedals", active[1].Slug)

	_, err = categories.GetBySlug(s.ctx, "synths")
	s.ErrorIs(err, models.ErrNotFound)
}
