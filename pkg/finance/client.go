package finance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API is the external finance data contract: a descriptive profile and a set
// of derived insight scores per ticker.
type API interface {
	FetchProfile(ctx context.Context, ticker, region string) (*Profile, error)
	FetchInsights(ctx context.Context, ticker string) (*Insights, error)
}

// Client talks to a Yahoo-style quoteSummary endpoint. The base URL is
// configurable so tests point it at a local server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a finance API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			SummaryProfile *summaryProfile `json:"summaryProfile"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"quoteSummary"`
}

type summaryProfile struct {
	Name              string           `json:"name"`
	Industry          string           `json:"industry"`
	Sector            string           `json:"sector"`
	Website           string           `json:"website"`
	Address1          string           `json:"address1"`
	Address2          string           `json:"address2"`
	City              string           `json:"city"`
	Zip               string           `json:"zip"`
	Country           string           `json:"country"`
	Phone             string           `json:"phone"`
	FullTimeEmployees *int             `json:"fullTimeEmployees"`
	BusinessSummary   string           `json:"longBusinessSummary"`
	CompanyOfficers   []officerPayload `json:"companyOfficers"`
	ExecutiveTeam     []officerPayload `json:"executiveTeam"`
}

type officerPayload struct {
	Name             string   `json:"name"`
	Title            string   `json:"title"`
	Age              *int     `json:"age"`
	YearBorn         *int     `json:"yearBorn"`
	FiscalYear       *int     `json:"fiscalYear"`
	TotalPay         *float64 `json:"totalPay"`
	ExercisedValue   *float64 `json:"exercisedValue"`
	UnexercisedValue *float64 `json:"unexercisedValue"`
}

type insightsResponse struct {
	Finance struct {
		Result struct {
			CompanySnapshot struct {
				Company struct {
					Innovativeness    *float64 `json:"innovativeness"`
					Hiring            *float64 `json:"hiring"`
					Sustainability    *float64 `json:"sustainability"`
					InsiderSentiments *float64 `json:"insiderSentiments"`
				} `json:"company"`
			} `json:"companySnapshot"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"finance"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// FetchProfile retrieves the summary profile for a ticker.
func (c *Client) FetchProfile(ctx context.Context, ticker, region string) (*Profile, error) {
	q := url.Values{}
	q.Set("symbol", ticker)
	q.Set("region", region)
	q.Set("modules", "summaryProfile")

	var payload quoteSummaryResponse
	if err := c.getJSON(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(ticker), q, &payload); err != nil {
		return nil, err
	}
	if payload.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("profile request for %s rejected: %s", ticker, payload.QuoteSummary.Error.Description)
	}
	if len(payload.QuoteSummary.Result) == 0 || payload.QuoteSummary.Result[0].SummaryProfile == nil {
		return nil, fmt.Errorf("no profile data returned for %s", ticker)
	}

	sp := payload.QuoteSummary.Result[0].SummaryProfile
	name := sp.Name
	if name == "" {
		name = ticker
	}
	p := &Profile{
		Name:            name,
		TickerSymbol:    ticker,
		Region:          region,
		Industry:        sp.Industry,
		Sector:          sp.Sector,
		Website:         sp.Website,
		Address:         combineAddress(sp),
		Phone:           sp.Phone,
		EmployeeCount:   sp.FullTimeEmployees,
		BusinessSummary: sp.BusinessSummary,
	}
	for _, o := range append(sp.CompanyOfficers, sp.ExecutiveTeam...) {
		p.Officers = append(p.Officers, Officer(o))
	}
	return p, nil
}

// FetchInsights retrieves derived company scores for a ticker.
func (c *Client) FetchInsights(ctx context.Context, ticker string) (*Insights, error) {
	q := url.Values{}
	q.Set("symbol", ticker)

	var payload insightsResponse
	if err := c.getJSON(ctx, "/ws/insights/v2/finance/insights", q, &payload); err != nil {
		return nil, err
	}
	if payload.Finance.Error != nil {
		return nil, fmt.Errorf("insights request for %s rejected: %s", ticker, payload.Finance.Error.Description)
	}

	company := payload.Finance.Result.CompanySnapshot.Company
	return &Insights{
		Innovativeness:   company.Innovativeness,
		Hiring:           company.Hiring,
		Sustainability:   company.Sustainability,
		InsiderSentiment: company.InsiderSentiments,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("finance request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("finance request returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed decoding finance response: %w", err)
	}
	return nil
}

func combineAddress(sp *summaryProfile) string {
	var parts []string
	for _, p := range []string{sp.Address1, sp.Address2, sp.City, sp.Zip, sp.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
