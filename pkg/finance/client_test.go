package finance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilePayload = `{
	"quoteSummary": {
		"result": [{
			"summaryProfile": {
				"industry": "Consumer Electronics",
				"sector": "Technology",
				"website": "https://www.apple.com",
				"address1": "One Apple Park Way",
				"city": "Cupertino",
				"zip": "95014",
				"country": "United States",
				"phone": "408 996 1010",
				"fullTimeEmployees": 161000,
				"longBusinessSummary": "Designs, manufactures and markets smartphones.",
				"companyOfficers": [
					{"name": "Mr. Timothy D. Cook", "title": "CEO & Director", "age": 62, "totalPay": 16239562}
				],
				"executiveTeam": [
					{"name": "Ms. Example Exec", "title": "SVP"}
				]
			}
		}],
		"error": null
	}
}`

const insightsPayload = `{
	"finance": {
		"result": {
			"companySnapshot": {
				"company": {
					"innovativeness": 0.89,
					"hiring": 0.62,
					"sustainability": 0.74,
					"insiderSentiments": 0.41
				}
			}
		},
		"error": null
	}
}`

func TestFetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v10/finance/quoteSummary/AAPL", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "US", r.URL.Query().Get("region"))
		assert.Equal(t, "summaryProfile", r.URL.Query().Get("modules"))
		w.Write([]byte(profilePayload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	p, err := c.FetchProfile(context.Background(), "AAPL", "US")
	require.NoError(t, err)

	// Profiles carry no display name, so the ticker stands in.
	assert.Equal(t, "AAPL", p.Name)
	assert.Equal(t, "Consumer Electronics", p.Industry)
	assert.Equal(t, "One Apple Park Way, Cupertino, 95014, United States", p.Address)
	require.NotNil(t, p.EmployeeCount)
	assert.Equal(t, 161000, *p.EmployeeCount)
	// companyOfficers and executiveTeam merge into one roster
	require.Len(t, p.Officers, 2)
	assert.Equal(t, "Mr. Timothy D. Cook", p.Officers[0].Name)
	assert.Equal(t, "Ms. Example Exec", p.Officers[1].Name)
}

func TestFetchProfile_NoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary": {"result": [], "error": null}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchProfile(context.Background(), "NOPE", "US")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile data returned")
}

func TestFetchProfile_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary": {"result": null, "error": {"code": "Not Found", "description": "Quote not found for symbol: NOPE"}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchProfile(context.Background(), "NOPE", "US")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Quote not found")
}

func TestFetchProfile_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchProfile(context.Background(), "AAPL", "US")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestFetchInsights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/insights/v2/finance/insights", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		w.Write([]byte(insightsPayload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ins, err := c.FetchInsights(context.Background(), "AAPL")
	require.NoError(t, err)

	require.NotNil(t, ins.Innovativeness)
	assert.InDelta(t, 0.89, *ins.Innovativeness, 1e-9)
	require.NotNil(t, ins.Hiring)
	assert.InDelta(t, 0.62, *ins.Hiring, 1e-9)
	require.NotNil(t, ins.InsiderSentiment)
	assert.InDelta(t, 0.41, *ins.InsiderSentiment, 1e-9)
}

func TestFetchInsights_MissingScores(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"finance": {"result": {"companySnapshot": {"company": {}}}, "error": null}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ins, err := c.FetchInsights(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Nil(t, ins.Innovativeness)
	assert.Nil(t, ins.Hiring)
}
