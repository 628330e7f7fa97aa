package catalog

import "strings"

// Group is an ordered bucket of services sharing a category name.
type Group struct {
	Name     string
	Services []Service
}

// GroupByCategory buckets services by category, keeping categories in the
// order they are first seen and services in row order within each bucket.
func GroupByCategory(services []Service) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, svc := range services {
		pos, ok := index[svc.Category]
		if !ok {
			pos = len(groups)
			index[svc.Category] = pos
			groups = append(groups, Group{Name: svc.Category})
		}
		groups[pos].Services = append(groups[pos].Services, svc)
	}
	return groups
}

var idReplacer = strings.NewReplacer("(", "", ")", "")

// DeriveID builds a category identifier from its display name when no
// trigger pattern row supplies one.
func DeriveID(name string) string {
	id := strings.ToLower(name)
	id = strings.ReplaceAll(id, " & ", "_")
	id = strings.ReplaceAll(id, " ", "_")
	return idReplacer.Replace(id)
}

// Build groups the workbook services into categories and attaches the
// matching trigger patterns. The engagement type of a category is taken from
// its first service.
func Build(wb Workbook) Catalog {
	groups := GroupByCategory(wb.Services)
	out := Catalog{
		Categories:  make([]Category, 0, len(groups)),
		Services:    len(wb.Services),
		TriggerSets: len(wb.Triggers),
	}

	for _, group := range groups {
		category := Category{
			Name:           group.Name,
			EngagementType: group.Services[0].EngagementType,
			Services:       group.Services,
		}

		if set, ok := wb.Triggers[group.Name]; ok {
			category.ID = set.ID
			category.Description = set.Description
			category.Triggers = set.Patterns
			category.Matched = true
		} else {
			category.ID = DeriveID(group.Name)
			category.Description = group.Name
		}

		out.Categories = append(out.Categories, category)
	}
	return out
}
