package dto

import (
	"net/http"
	"stayfinder/shared/constant"
	"stayfinder/shared/store"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request. With defaultRequest set, missing
// page and limit fall back to constant.DefaultValuePage / DefaultValueLimit; otherwise the
// whole result set is returned.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = DefaultValueLimit
		}
	}
}

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 20
)

// FindOptions translates paging and sorting into store options.
func (q *QueryParams) FindOptions(projection bson.M) store.FindOptions {
	opts := store.FindOptions{Projection: projection}

	if q.Limit > 0 {
		opts.Limit = int64(q.Limit)

		if q.Page > 0 {
			opts.Skip = int64((q.Page - 1) * q.Limit)
		}
	}

	if q.SortBy != "" {
		dir := 1
		if q.SortDir == SortDirDesc {
			dir = -1
		}

		opts.Sort = bson.D{{Key: q.SortBy, Value: dir}}
	}

	return opts
}
