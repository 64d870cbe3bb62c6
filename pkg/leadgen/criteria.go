// Package leadgen implements the lead generation agent: ICP management,
// prospect finding, lead qualification and lead reporting.
package leadgen

import "encoding/json"

// DefaultMinScoreThreshold applies when an ICP does not set one.
const DefaultMinScoreThreshold = 0.5

// Criteria is the matching definition stored on an ICP. A nil slice means
// the criterion is absent; an empty non-nil slice counts as a declared
// criterion that nothing can match, which mirrors how stored profiles with
// emptied lists have always scored.
type Criteria struct {
	PreferredIndustries    []string `json:"preferred_industries,omitempty"`
	PreferredRegions       []string `json:"preferred_regions,omitempty"`
	PreferredCompanySizes  []string `json:"preferred_company_sizes,omitempty"`
	PreferredJobTitles     []string `json:"preferred_job_titles,omitempty"`
	PreferredTechnologies  []string `json:"preferred_technologies,omitempty"`
	RequiredIndustry       []string `json:"required_industry,omitempty"`
	RequiredRegion         []string `json:"required_region,omitempty"`
	MinScoreThreshold      *float64 `json:"min_score_threshold,omitempty"`
}

// Threshold returns the minimum qualification score for this ICP.
func (c Criteria) Threshold() float64 {
	if c.MinScoreThreshold != nil {
		return *c.MinScoreThreshold
	}
	return DefaultMinScoreThreshold
}

// Marshal encodes the criteria for storage.
func (c Criteria) Marshal() (string, error) {
	raw, err := json.Marshal(c)
	return string(raw), err
}

// ParseCriteria decodes a stored criteria payload.
func ParseCriteria(raw string) (Criteria, error) {
	var c Criteria
	err := json.Unmarshal([]byte(raw), &c)
	return c, err
}

// sizeBucket is a labeled employee-count range. Unbounded upper ends use
// max = 0.
type sizeBucket struct {
	min, max int
}

var sizeBuckets = map[string]sizeBucket{
	"1-10":     {1, 10},
	"11-50":    {11, 50},
	"51-200":   {51, 200},
	"201-500":  {201, 500},
	"501-1000": {501, 1000},
	"1000+":    {1001, 0},
}

// employeeRange collapses the selected size buckets into a single range from
// the smallest lower bound to the largest upper bound. For non-adjacent
// buckets this is deliberately permissive: counts falling between the
// selected buckets still pass. Unrecognized labels are ignored; nil, nil
// means no constraint.
func employeeRange(sizes []string) (min, max *int) {
	found := false
	lo := 0
	hi := 0
	unbounded := false
	for _, s := range sizes {
		b, ok := sizeBuckets[s]
		if !ok {
			continue
		}
		if !found || b.min < lo {
			lo = b.min
		}
		if b.max == 0 {
			unbounded = true
		} else if b.max > hi {
			hi = b.max
		}
		found = true
	}
	if !found {
		return nil, nil
	}
	min = &lo
	if !unbounded {
		max = &hi
	}
	return min, max
}

// matchesSizeBuckets reports whether an employee count falls in the collapsed
// range of the selected buckets. A nil count never matches.
func matchesSizeBuckets(count *int, sizes []string) bool {
	if count == nil {
		return false
	}
	min, max := employeeRange(sizes)
	if min == nil && max == nil {
		return false
	}
	if min != nil && *count < *min {
		return false
	}
	if max != nil && *count > *max {
		return false
	}
	return true
}
