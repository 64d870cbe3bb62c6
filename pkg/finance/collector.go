package finance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/sentiment"
	"github.com/jordanlanch/bizradar/pkg/store"
)

var (
	newsSources = []string{"Economic Times", "Business Standard", "Mint", "Financial Express", "Business Today"}
	newsTopics  = []string{"financial results", "new product launch", "expansion", "management changes", "market strategy"}
)

// Collector pulls external company data into the store.
type Collector struct {
	api    API
	store  *store.Store
	scorer sentiment.Scorer
	log    logger.Logger
}

// NewCollector creates a data collector.
func NewCollector(api API, st *store.Store, scorer sentiment.Scorer, log logger.Logger) *Collector {
	return &Collector{api: api, store: st, scorer: scorer, log: log}
}

// CollectCompany fetches the profile and insight scores for a ticker and
// upserts the company and its officer roster. An insights failure degrades
// to a profile-only record rather than aborting.
func (c *Collector) CollectCompany(ctx context.Context, ticker, region string) (*store.Company, error) {
	profile, err := c.api.FetchProfile(ctx, ticker, region)
	if err != nil {
		return nil, fmt.Errorf("failed collecting profile for %s: %w", ticker, err)
	}

	company := &store.Company{
		Name:            profile.Name,
		TickerSymbol:    &profile.TickerSymbol,
		Region:          profile.Region,
		Industry:        profile.Industry,
		Sector:          profile.Sector,
		Website:         profile.Website,
		Address:         profile.Address,
		Phone:           profile.Phone,
		EmployeeCount:   profile.EmployeeCount,
		BusinessSummary: profile.BusinessSummary,
		DataSource:      "YahooFinance",
	}

	insights, err := c.api.FetchInsights(ctx, ticker)
	if err != nil {
		c.log.Warn("insights unavailable, storing profile only", "ticker", ticker, "error", err)
	} else {
		company.InnovativenessScore = insights.Innovativeness
		company.HiringScore = insights.Hiring
		company.SustainabilityScore = insights.Sustainability
		company.InsiderSentimentScore = insights.InsiderSentiment
	}

	id, err := c.store.UpsertCompany(ctx, company)
	if err != nil {
		return nil, err
	}

	if len(profile.Officers) > 0 {
		officers := make([]store.CompanyOfficer, 0, len(profile.Officers))
		for _, o := range profile.Officers {
			officers = append(officers, store.CompanyOfficer{
				Name:             o.Name,
				Title:            o.Title,
				Age:              o.Age,
				YearBorn:         o.YearBorn,
				FiscalYear:       o.FiscalYear,
				TotalPay:         o.TotalPay,
				ExercisedValue:   o.ExercisedValue,
				UnexercisedValue: o.UnexercisedValue,
			})
		}
		if err := c.store.ReplaceOfficers(ctx, id, officers); err != nil {
			c.log.Warn("failed storing officers", "ticker", ticker, "error", err)
		}
	}

	c.log.Info("collected company data", "ticker", ticker, "company_id", id)
	return company, nil
}

// CollectNews generates placeholder news coverage for a company, scores it,
// and stores it. Article URLs are stable per (company, index) so repeated
// collection dedupes instead of piling up rows. Real source integration is
// the caller's concern; this keeps demo databases populated.
func (c *Collector) CollectNews(ctx context.Context, companyName string, numArticles int) ([]store.NewsArticle, error) {
	if numArticles <= 0 {
		numArticles = 5
	}

	var companyID *uint
	var industry string
	if company, err := c.store.GetCompanyByName(ctx, companyName); err == nil {
		companyID = &company.ID
		industry = company.Industry
	}

	slug := strings.ReplaceAll(strings.ToLower(companyName), " ", "-")
	now := time.Now()

	var articles []store.NewsArticle
	for i := 0; i < numArticles; i++ {
		topic := newsTopics[i%len(newsTopics)]
		summary := fmt.Sprintf("%s reported developments around %s. %s", companyName, topic, gofakeit.Sentence(8))

		article := store.NewsArticle{
			CompanyID:     companyID,
			Industry:      industry,
			Topic:         topic,
			Title:         fmt.Sprintf("%s %s", companyName, topic),
			SourceName:    gofakeit.RandomString(newsSources),
			SourceURL:     fmt.Sprintf("http://example.com/%s/article%d", slug, i),
			PublishedDate: &now,
			Summary:       summary,
			CollectedDate: now,
		}

		if res, err := c.scorer.Score(summary); err != nil {
			c.log.Warn("sentiment scoring failed, storing unscored article", "company", companyName, "error", err)
		} else {
			score := res.Compound
			article.SentimentScore = &score
			article.SentimentLabel = res.Label
		}

		id, err := c.store.AddNewsArticle(ctx, &article)
		if err != nil {
			c.log.Error("failed storing article", "company", companyName, "url", article.SourceURL, "error", err)
			continue
		}
		article.ID = id
		articles = append(articles, article)
	}

	c.log.Info("collected news", "company", companyName, "articles", len(articles))
	return articles, nil
}
