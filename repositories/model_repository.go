package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tonehunt-catalog/models"
)

type ModelRepository interface {
	List(ctx context.Context, q models.ModelQuery) (*models.ModelPage, error)
	Trending(ctx context.Context, q models.TrendingQuery) (*models.ModelPage, error)
}

type modelRepository struct {
	db *gorm.DB
}

func NewModelRepository(db *gorm.DB) ModelRepository {
	return &modelRepository{db: db}
}

// Count and page must see the same rows.
var snapshotTx = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

const (
	favoritesCountSQL = "(SELECT COUNT(*) FROM favorites WHERE favorites.model_id = models.id AND favorites.deleted = false)"
	downloadsCountSQL = "(SELECT COUNT(*) FROM model_downloads WHERE model_downloads.model_id = models.id AND model_downloads.deleted = false)"
	viewerFavoriteSQL = "(SELECT MIN(favorites.id) FROM favorites WHERE favorites.model_id = models.id AND favorites.profile_id = ? AND favorites.deleted = false)"
)

var rowColumns = []string{
	"models.id",
	"models.title",
	"coalesce(models.description, '') AS description",
	"coalesce(models.amp_name, '') AS amp_name",
	"coalesce(models.filename, '') AS filename",
	"models.filecount",
	"coalesce(models.icon, '') AS icon",
	"coalesce(models.link, '') AS link",
	"models.tags",
	"models.license_id",
	"models.created_at",
	"models.updated_at",
	"profiles.id AS profile_id",
	"profiles.username AS profile_username",
	"categories.id AS category_id",
	"categories.title AS category_title",
	"categories.slug AS category_slug",
	"coalesce(categories.plural_title, '') AS category_plural_title",
	favoritesCountSQL + " AS favorites_count",
	downloadsCountSQL + " AS downloads_count",
}

type modelRowRecord struct {
	ID                  string
	Title               string
	Description         string
	AmpName             string
	Filename            string
	Filecount           *int
	Icon                string
	Link                string
	Tags                pq.StringArray `gorm:"type:text[]"`
	LicenseID           *uint
	CreatedAt           time.Time
	UpdatedAt           time.Time
	ProfileID           string
	ProfileUsername     *string
	CategoryID          uint
	CategoryTitle       string
	CategorySlug        string
	CategoryPluralTitle string
	FavoritesCount      int64
	DownloadsCount      int64
	FavoriteID          *uint
}

func (r modelRowRecord) toRow() models.ModelRow {
	return models.ModelRow{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		AmpName:     r.AmpName,
		Filename:    r.Filename,
		Filecount:   r.Filecount,
		Icon:        r.Icon,
		Link:        r.Link,
		Tags:        r.Tags,
		LicenseID:   r.LicenseID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Profile:     models.ProfileSummary{ID: r.ProfileID, Username: r.ProfileUsername},
		Category: models.CategorySummary{
			ID:          r.CategoryID,
			Title:       r.CategoryTitle,
			Slug:        r.CategorySlug,
			PluralTitle: r.CategoryPluralTitle,
		},
		Count:      models.EngagementCount{Favorites: r.FavoritesCount, Downloads: r.DownloadsCount},
		FavoriteID: r.FavoriteID,
	}
}

func toRows(records []modelRowRecord) []models.ModelRow {
	rows := make([]models.ModelRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.toRow())
	}
	return rows
}

// rowSelect returns the projection and its vars. The viewer's favorite is
// only selected when there is a viewer.
func rowSelect(viewerID string) (string, []interface{}) {
	if viewerID == "" {
		return strings.Join(rowColumns, ", "), nil
	}
	return strings.Join(rowColumns, ", ") + ", " + viewerFavoriteSQL + " AS favorite_id", []interface{}{viewerID}
}

func modelScope(tx *gorm.DB, predicate clause.Expression) *gorm.DB {
	return tx.Model(&models.Model{}).
		Joins("JOIN profiles ON profiles.id = models.profile_id").
		Joins("JOIN categories ON categories.id = models.category_id").
		Where(predicate)
}

func listOrder(q models.ModelQuery) clause.OrderBy {
	desc := q.Direction.Desc()
	var columns []clause.OrderByColumn
	if q.Popular() {
		columns = []clause.OrderByColumn{
			{Column: clause.Column{Name: "favorites_count", Raw: true}, Desc: desc},
			{Column: clause.Column{Name: "downloads_count", Raw: true}, Desc: desc},
		}
	} else {
		columns = []clause.OrderByColumn{
			{Column: clause.Column{Name: q.Sort.Column(), Raw: true}, Desc: desc},
		}
	}
	columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: "models.id", Raw: true}})
	return clause.OrderBy{Columns: columns}
}

func (r *modelRepository) List(ctx context.Context, q models.ModelQuery) (*models.ModelPage, error) {
	predicate := buildPredicate(q, listPredicates)
	page := &models.ModelPage{Data: []models.ModelRow{}}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := modelScope(tx, predicate).Count(&page.Total).Error; err != nil {
			return fmt.Errorf("count models: %w", err)
		}
		if int64(q.Offset) >= page.Total {
			return nil
		}

		selectSQL, selectVars := rowSelect(q.ViewerID)
		var records []modelRowRecord
		err := modelScope(tx, predicate).
			Select(selectSQL, selectVars...).
			Order(listOrder(q)).
			Limit(q.Limit).
			Offset(q.Offset).
			Scan(&records).Error
		if err != nil {
			return fmt.Errorf("fetch models: %w", err)
		}
		page.Data = toRows(records)
		return nil
	}, snapshotTx)
	if err != nil {
		return nil, classifyError(err)
	}
	return page, nil
}

// trendingSet is the qualifying relation with its aggregates. Total and page
// are both read from it.
func trendingSet(tx *gorm.DB, predicate clause.Expression, viewerID string) *gorm.DB {
	selectSQL, selectVars := rowSelect(viewerID)
	sub := modelScope(tx.Session(&gorm.Session{}), predicate).Select(selectSQL, selectVars...)
	return tx.Session(&gorm.Session{}).Table("(?) AS trending", sub)
}

func (r *modelRepository) Trending(ctx context.Context, q models.TrendingQuery) (*models.ModelPage, error) {
	predicate := buildPredicate(q, trendingPredicates)
	page := &models.ModelPage{Data: []models.ModelRow{}}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := trendingSet(tx, predicate, q.ViewerID).Count(&page.Total).Error; err != nil {
			return fmt.Errorf("count trending: %w", err)
		}
		if int64(q.Offset) >= page.Total {
			return nil
		}

		var records []modelRowRecord
		err := trendingSet(tx, predicate, q.ViewerID).
			Select("trending.*").
			Order("trending.favorites_count DESC, trending.downloads_count DESC, trending.id ASC").
			Limit(q.Limit).
			Offset(q.Offset).
			Scan(&records).Error
		if err != nil {
			return fmt.Errorf("fetch trending: %w", err)
		}
		page.Data = toRows(records)
		return nil
	}, snapshotTx)
	if err != nil {
		return nil, classifyError(err)
	}
	return page, nil
}
