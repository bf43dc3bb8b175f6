package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/nurpe/obras-portal/internal/model"
)

// AllFilter is the sentinel value that disables a filter dimension.
const AllFilter = "all"

type ProjectFilter struct {
	CityID   string
	District string
	Status   string
	Search   string
	// FoldAccents makes the search ignore diacritics ("Rimac" matches "Rímac").
	FoldAccents bool
}

// FilterProjects returns the projects matching every active constraint, in
// input order. An unknown city id imposes no location constraint.
func FilterProjects(all []model.Project, regions []model.Region, filter ProjectFilter) []model.Project {
	cityName := ""
	if city, _, ok := ResolveCity(regions, filter.CityID); ok {
		cityName = city.Name
	}
	district := strings.TrimSpace(filter.District)
	if district == AllFilter {
		district = ""
	}
	status := strings.TrimSpace(filter.Status)
	if status == AllFilter {
		status = ""
	}
	query := normalizeSearch(strings.TrimSpace(filter.Search), filter.FoldAccents)

	result := make([]model.Project, 0, len(all))
	for _, p := range all {
		if cityName != "" && p.City != cityName {
			continue
		}
		if district != "" && p.District != district {
			continue
		}
		if status != "" && string(p.Status) != status {
			continue
		}
		if query != "" && !matchesAny(query, filter.FoldAccents, p.Name, p.Location, p.City, p.ContractID) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// ResolveCity finds a city by id across all regions.
func ResolveCity(regions []model.Region, cityID string) (model.City, model.Region, bool) {
	cityID = strings.TrimSpace(cityID)
	if cityID == "" || cityID == AllFilter {
		return model.City{}, model.Region{}, false
	}
	for _, region := range regions {
		for _, city := range region.Cities {
			if city.ID == cityID {
				return city, region, true
			}
		}
	}
	return model.City{}, model.Region{}, false
}

type MapView struct {
	Center model.LatLng `json:"center"`
	Zoom   int          `json:"zoom"`
}

// ResolveMapView centres the map on the selected city, or falls back to def.
func ResolveMapView(regions []model.Region, cityID string, def MapView) MapView {
	city, _, ok := ResolveCity(regions, cityID)
	if !ok {
		return def
	}
	return MapView{Center: city.Center(), Zoom: city.Zoom}
}

type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices items into 1-based pages; out-of-range pages are clamped.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = len(items)
		if size == 0 {
			size = 1
		}
	}
	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:      out,
		Page:       page,
		PageSize:   size,
		Total:      len(items),
		TotalPages: totalPages,
	}
}

type UserFilter struct {
	Search string
	Role   string
	Status string
}

func FilterUsers(all []model.AdminUser, filter UserFilter) []model.AdminUser {
	query := strings.ToLower(strings.TrimSpace(filter.Search))
	role := strings.TrimSpace(filter.Role)
	status := strings.TrimSpace(filter.Status)

	result := make([]model.AdminUser, 0, len(all))
	for _, u := range all {
		if role != "" && role != AllFilter && string(u.Role) != role {
			continue
		}
		if status != "" && status != AllFilter && string(u.Status) != status {
			continue
		}
		if query != "" && !matchesAny(query, false, u.Name, u.Email) {
			continue
		}
		result = append(result, u)
	}
	return result
}

func matchesAny(query string, fold bool, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(normalizeSearch(field, fold), query) {
			return true
		}
	}
	return false
}

func normalizeSearch(s string, fold bool) string {
	s = strings.ToLower(s)
	if !fold || s == "" {
		return s
	}
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		return s
	}
	return folded
}
