package repositories

import (
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm/clause"

	"tonehunt-catalog/models"
)

// predicateBuilder contributes one conjunct to the WHERE clause, or nothing
// when its parameter is absent.
type predicateBuilder[Q any] func(q Q) (clause.Expression, bool)

var listPredicates = []predicateBuilder[models.ModelQuery]{
	visibilityPredicate,
	func(q models.ModelQuery) (clause.Expression, bool) { return categoryFilter(q.CategoryID) },
	usernamePredicate,
	profilePredicate,
	searchPredicate,
	func(q models.ModelQuery) (clause.Expression, bool) { return tagsFilter(q.Tags) },
	followingPredicate,
	recencyPredicate,
}

var trendingPredicates = []predicateBuilder[models.TrendingQuery]{
	func(models.TrendingQuery) (clause.Expression, bool) { return visibleModels(false), true },
	func(q models.TrendingQuery) (clause.Expression, bool) { return categoryFilter(q.CategoryID) },
	func(q models.TrendingQuery) (clause.Expression, bool) { return tagsFilter(q.Tags) },
	func(q models.TrendingQuery) (clause.Expression, bool) { return favoritedSince(q.FavoritedSince), true },
}

func buildPredicate[Q any](q Q, builders []predicateBuilder[Q]) clause.Expression {
	exprs := make([]clause.Expression, 0, len(builders))
	for _, build := range builders {
		if expr, ok := build(q); ok {
			exprs = append(exprs, expr)
		}
	}
	return clause.And(exprs...)
}

func modelColumn(name string) clause.Column {
	return clause.Column{Table: "models", Name: name}
}

// visibleModels never lets a private or deleted model through; active is
// relaxed only when includeInactive is set.
func visibleModels(includeInactive bool) clause.Expression {
	exprs := []clause.Expression{
		clause.Eq{Column: modelColumn("private"), Value: false},
		clause.Eq{Column: modelColumn("deleted"), Value: false},
	}
	if !includeInactive {
		exprs = append(exprs, clause.Eq{Column: modelColumn("active"), Value: true})
	}
	return clause.And(exprs...)
}

func visibilityPredicate(q models.ModelQuery) (clause.Expression, bool) {
	return visibleModels(q.IncludeInactive), true
}

func categoryFilter(categoryID uint) (clause.Expression, bool) {
	if categoryID == 0 {
		return nil, false
	}
	return clause.Eq{Column: modelColumn("category_id"), Value: categoryID}, true
}

func tagsFilter(tags []string) (clause.Expression, bool) {
	if len(tags) == 0 {
		return nil, false
	}
	return clause.Expr{SQL: "models.tags && ?::text[]", Vars: []interface{}{pq.StringArray(tags)}}, true
}

func usernamePredicate(q models.ModelQuery) (clause.Expression, bool) {
	if q.Username == "" {
		return nil, false
	}
	return clause.Eq{Column: clause.Column{Table: "profiles", Name: "username"}, Value: q.Username}, true
}

func profilePredicate(q models.ModelQuery) (clause.Expression, bool) {
	if q.ProfileID == "" {
		return nil, false
	}
	return clause.Eq{Column: modelColumn("profile_id"), Value: q.ProfileID}, true
}

// searchPredicate matches when every term is in the owner's username, or
// every term is in the title, or any term hits the description text search.
func searchPredicate(q models.ModelQuery) (clause.Expression, bool) {
	if len(q.SearchTerms) == 0 {
		return nil, false
	}

	username := make([]clause.Expression, 0, len(q.SearchTerms))
	title := make([]clause.Expression, 0, len(q.SearchTerms))
	for _, term := range q.SearchTerms {
		pattern := containsPattern(term)
		username = append(username, clause.Expr{SQL: "profiles.username ILIKE ?", Vars: []interface{}{pattern}})
		title = append(title, clause.Expr{SQL: "models.title ILIKE ?", Vars: []interface{}{pattern}})
	}
	description := clause.Expr{
		SQL:  "to_tsvector(coalesce(models.description, '')) @@ to_tsquery(?)",
		Vars: []interface{}{tsQuery(q.SearchTerms)},
	}

	return clause.Or(clause.And(username...), clause.And(title...), description), true
}

func followingPredicate(q models.ModelQuery) (clause.Expression, bool) {
	if q.FollowerID == "" {
		return nil, false
	}
	return clause.Expr{
		SQL: "EXISTS (SELECT 1 FROM follows WHERE follows.target_id = models.profile_id" +
			" AND follows.profile_id = ? AND follows.active = true AND follows.deleted = false)",
		Vars: []interface{}{q.FollowerID},
	}, true
}

func recencyPredicate(q models.ModelQuery) (clause.Expression, bool) {
	if q.CreatedSince == nil {
		return nil, false
	}
	return clause.Gte{Column: modelColumn("created_at"), Value: *q.CreatedSince}, true
}

// favoritedSince gates trending membership only; counts stay all-time.
func favoritedSince(since time.Time) clause.Expression {
	return clause.Expr{
		SQL: "EXISTS (SELECT 1 FROM favorites WHERE favorites.model_id = models.id" +
			" AND favorites.deleted = false AND favorites.created_at > ?)",
		Vars: []interface{}{since},
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

var lexemeEscaper = strings.NewReplacer(`\`, `\\`, `'`, `''`)

// tsQuery ORs the terms as quoted lexemes so leftover punctuation cannot
// break to_tsquery parsing.
func tsQuery(terms []string) string {
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = "'" + lexemeEscaper.Replace(term) + "'"
	}
	return strings.Join(quoted, " | ")
}
