package leadgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int         { return &n }
func f64Ptr(f float64) *float64 { return &f }

func TestThreshold(t *testing.T) {
	assert.Equal(t, 0.5, Criteria{}.Threshold())
	assert.Equal(t, 0.75, Criteria{MinScoreThreshold: f64Ptr(0.75)}.Threshold())
	assert.Equal(t, 0.0, Criteria{MinScoreThreshold: f64Ptr(0)}.Threshold())
}

func TestCriteriaRoundTrip(t *testing.T) {
	c := Criteria{
		PreferredIndustries:   []string{"Software"},
		PreferredCompanySizes: []string{"11-50"},
		RequiredRegion:        []string{"US"},
		MinScoreThreshold:     f64Ptr(0.6),
	}
	raw, err := c.Marshal()
	require.NoError(t, err)

	got, err := ParseCriteria(raw)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestParseCriteria_Invalid(t *testing.T) {
	_, err := ParseCriteria("{not json")
	assert.Error(t, err)
}

func TestEmployeeRange(t *testing.T) {
	tests := []struct {
		name    string
		sizes   []string
		wantMin *int
		wantMax *int
	}{
		{"single bucket", []string{"11-50"}, intPtr(11), intPtr(50)},
		{"adjacent buckets", []string{"11-50", "51-200"}, intPtr(11), intPtr(200)},
		// Non-adjacent buckets collapse into one permissive span.
		{"gap between buckets", []string{"1-10", "501-1000"}, intPtr(1), intPtr(1000)},
		{"open upper end", []string{"201-500", "1000+"}, intPtr(201), nil},
		{"unknown labels ignored", []string{"huge", "11-50"}, intPtr(11), intPtr(50)},
		{"no recognized labels", []string{"huge"}, nil, nil},
		{"empty", nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := employeeRange(tt.sizes)
			assert.Equal(t, tt.wantMin, min)
			assert.Equal(t, tt.wantMax, max)
		})
	}
}

func TestMatchesSizeBuckets(t *testing.T) {
	// 300 sits between the two selected buckets but inside the collapsed range.
	assert.True(t, matchesSizeBuckets(intPtr(300), []string{"1-10", "1000+"}))
	assert.True(t, matchesSizeBuckets(intPtr(3), []string{"1-10", "1000+"}))
	assert.True(t, matchesSizeBuckets(intPtr(50000), []string{"1-10", "1000+"}))

	assert.True(t, matchesSizeBuckets(intPtr(25), []string{"11-50"}))
	assert.False(t, matchesSizeBuckets(intPtr(51), []string{"11-50"}))
	assert.False(t, matchesSizeBuckets(intPtr(10), []string{"11-50"}))

	assert.False(t, matchesSizeBuckets(nil, []string{"11-50"}))
	assert.False(t, matchesSizeBuckets(intPtr(25), nil))
	assert.False(t, matchesSizeBuckets(intPtr(25), []string{"bogus"}))
}
