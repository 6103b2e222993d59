package store

import (
	"net/url"
	"strings"
)

// VenueFilter holds the structured filter form. Scalar fields match as
// substrings, slice fields as set membership. Name and Address arrive from
// the form but never produce a clause; they only count toward the "was
// anything supplied" check (kept as-is pending product sign-off).
type VenueFilter struct {
	Name            string
	Address         string
	Playground      string
	Fenced          string
	QuietZones      string
	FoodOwn         string
	DefinedDuration string
	PhotoURL        string
	Colors          []string
	Smells          []string
	Quiet           []string
	Crowdedness     []string
	FoodVariety     []string
}

// Parse extracts the filter fields from the request query. Absent keys and
// empty values are treated identically: no constraint.
func (f VenueFilter) Parse(params url.Values) VenueFilter {
	f.Name = params.Get("name")
	f.Address = params.Get("address")
	f.Playground = params.Get("playground")
	f.Fenced = params.Get("fenced")
	f.QuietZones = params.Get("quiet_zones")
	f.FoodOwn = params.Get("food_own")
	f.DefinedDuration = params.Get("defined_duration")
	f.PhotoURL = params.Get("photo_url")
	f.Colors = nonEmpty(params["colors"])
	f.Smells = nonEmpty(params["smells"])
	f.Quiet = nonEmpty(params["quiet"])
	f.Crowdedness = nonEmpty(params["crowdedness"])
	f.FoodVariety = nonEmpty(params["food_variey"])
	return f
}

// Empty reports whether no field at all was supplied, including the
// clause-less Name and Address.
func (f VenueFilter) Empty() bool {
	return f.Name == "" && f.Address == "" &&
		f.Playground == "" && f.Fenced == "" && f.QuietZones == "" &&
		f.FoodOwn == "" && f.DefinedDuration == "" && f.PhotoURL == "" &&
		len(f.Colors) == 0 && len(f.Smells) == 0 && len(f.Quiet) == 0 &&
		len(f.Crowdedness) == 0 && len(f.FoodVariety) == 0
}

// predicate is one (column, operator, values) spec. Column names are fixed
// identifiers from this table; user input only ever becomes a bound value.
type predicate struct {
	column     string
	values     []string
	membership bool // IN (...) instead of LIKE
}

func (f VenueFilter) predicates() []predicate {
	return []predicate{
		{column: "playground", values: scalar(f.Playground)},
		{column: "fenced", values: scalar(f.Fenced)},
		{column: "quiet_zones", values: scalar(f.QuietZones)},
		{column: "colors", values: f.Colors, membership: true},
		{column: "smells", values: f.Smells, membership: true},
		{column: "food_own", values: scalar(f.FoodOwn)},
		{column: "defined_duration", values: scalar(f.DefinedDuration)},
		{column: "quiet", values: f.Quiet, membership: true},
		{column: "crowdedness", values: f.Crowdedness, membership: true},
		{column: "food_variey", values: f.FoodVariety, membership: true},
		{column: "photo_url", values: scalar(f.PhotoURL)},
	}
}

// Build folds the supplied predicates into a WHERE clause (without the
// keyword) and its bound arguments. Both return values are empty when the
// filter imposes no constraint.
func (f VenueFilter) Build() (string, []any) {
	if f.Empty() {
		return "", nil
	}

	var clauses []string
	var args []any
	for _, p := range f.predicates() {
		if len(p.values) == 0 {
			continue
		}
		if p.membership {
			placeholders := strings.TrimSuffix(strings.Repeat("?,", len(p.values)), ",")
			clauses = append(clauses, p.column+" IN ("+placeholders+")")
			for _, v := range p.values {
				args = append(args, v)
			}
		} else {
			clauses = append(clauses, p.column+" LIKE ?")
			args = append(args, "%"+p.values[0]+"%")
		}
	}
	if len(clauses) == 0 {
		// only Name/Address were supplied; nothing to constrain on
		return "", nil
	}
	return strings.Join(clauses, " AND "), args
}

func scalar(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
