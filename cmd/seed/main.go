// Seeds the database with Bengaluru real estate data, a batch of generated
// technology companies, and a default ICP so the API has something to work
// with out of the box.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/jordanlanch/bizradar/config"
	"github.com/jordanlanch/bizradar/pkg/database"
	"github.com/jordanlanch/bizradar/pkg/leadgen"
	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/store"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.NewClient(cfg.DatabasePath)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	st := store.New(db.DB, log)
	ctx := context.Background()

	log.Info("seeding database", "path", cfg.DatabasePath)

	companyIDs := map[string]uint{}
	for _, c := range bengaluruCompanies() {
		c := c
		id, err := st.UpsertCompany(ctx, &c)
		if err != nil {
			log.Error("failed to seed company", "name", c.Name, "error", err)
			continue
		}
		companyIDs[c.Name] = id
		log.Info("seeded company", "name", c.Name, "company_id", id)
	}

	for _, f := range bengaluruFirms() {
		f := f
		if id, ok := companyIDs[f.FirmName]; ok {
			f.CompanyID = &id
		}
		if _, err := st.AddArchitecturalFirm(ctx, &f); err != nil {
			log.Error("failed to seed architectural firm", "firm_name", f.FirmName, "error", err)
		}
	}

	for _, p := range bengaluruProjects() {
		p := p
		if id, ok := companyIDs[p.DeveloperName]; ok {
			p.DeveloperID = &id
		}
		if _, err := st.AddRealEstateProject(ctx, &p); err != nil {
			log.Error("failed to seed project", "project_name", p.ProjectName, "error", err)
		}
	}

	for _, a := range bengaluruNews(companyIDs) {
		a := a
		if _, err := st.AddNewsArticle(ctx, &a); err != nil {
			log.Error("failed to seed news article", "title", a.Title, "error", err)
		}
	}

	for _, t := range bengaluruTrends() {
		t := t
		if _, err := st.AddMarketTrend(ctx, &t); err != nil {
			log.Error("failed to seed market trend", "error", err)
		}
	}

	seedTechCompanies(ctx, st, log, 20)
	seedDefaultICPs(ctx, st, log)

	log.Info("seeding complete")
}

// seedTechCompanies generates plausible software companies and a couple of
// news articles each, so lead generation has prospects outside the curated
// real estate set.
func seedTechCompanies(ctx context.Context, st *store.Store, log logger.Logger, count int) {
	gofakeit.Seed(42)
	industries := []string{"Software", "Technology", "Fintech", "E-commerce"}
	regions := []string{"US", "IN", "EU", "UK"}

	for i := 0; i < count; i++ {
		name := gofakeit.Company()
		employees := gofakeit.Number(5, 5000)
		marketCap := gofakeit.Float64Range(1e7, 5e10)
		growth := gofakeit.Float64Range(-0.05, 0.4)
		margin := gofakeit.Float64Range(-0.1, 0.35)

		c := store.Company{
			Name:            name,
			Region:          gofakeit.RandomString(regions),
			Industry:        gofakeit.RandomString(industries),
			Sector:          "Technology",
			Website:         fmt.Sprintf("https://www.%s.com", slugify(name)),
			EmployeeCount:   &employees,
			BusinessSummary: gofakeit.Sentence(12),
			MarketCap:       &marketCap,
			GrowthRate:      &growth,
			ProfitMargin:    &margin,
			DataSource:      "Seed",
		}
		id, err := st.UpsertCompany(ctx, &c)
		if err != nil {
			log.Error("failed to seed tech company", "name", name, "error", err)
			continue
		}

		for j := 0; j < 2; j++ {
			score := gofakeit.Float64Range(-0.8, 0.8)
			published := time.Now().AddDate(0, 0, -gofakeit.Number(1, 60))
			a := store.NewsArticle{
				CompanyID:      &id,
				Industry:       c.Industry,
				Title:          fmt.Sprintf("%s %s", name, gofakeit.Sentence(6)),
				SourceName:     gofakeit.Company(),
				SourceURL:      fmt.Sprintf("https://news.example.com/%s/%d", slugify(name), j),
				PublishedDate:  &published,
				Summary:        gofakeit.Sentence(15),
				SentimentScore: &score,
				SentimentLabel: labelFor(score),
			}
			if _, err := st.AddNewsArticle(ctx, &a); err != nil {
				log.Error("failed to seed tech news", "title", a.Title, "error", err)
			}
		}
	}
	log.Info("seeded generated tech companies", "count", count)
}

func seedDefaultICPs(ctx context.Context, st *store.Store, log logger.Logger) {
	profiles := map[string]leadgen.Criteria{
		"tech_startups": {
			PreferredIndustries:   []string{"Software", "Technology", "Fintech"},
			PreferredRegions:      []string{"US", "IN"},
			PreferredCompanySizes: []string{"11-50", "51-200"},
		},
		"bengaluru_real_estate": {
			PreferredIndustries:   []string{"Real Estate Development", "Construction"},
			PreferredRegions:      []string{"IN"},
			PreferredCompanySizes: []string{"501-1000", "1000+"},
			RequiredRegion:        []string{"IN"},
		},
	}
	for name, criteria := range profiles {
		raw, err := criteria.Marshal()
		if err != nil {
			log.Error("failed to encode ICP criteria", "profile_name", name, "error", err)
			continue
		}
		if _, err := st.UpsertICP(ctx, name, raw); err != nil {
			log.Error("failed to seed ICP", "profile_name", name, "error", err)
			continue
		}
		log.Info("seeded ICP", "profile_name", name)
	}
}

func slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, s)
	return strings.Trim(s, "-")
}

func labelFor(score float64) string {
	switch {
	case score >= 0.05:
		return "positive"
	case score <= -0.05:
		return "negative"
	default:
		return "neutral"
	}
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func f64Ptr(f float64) *float64 { return &f }

func daysAgo(n int) *time.Time { t := time.Now().AddDate(0, 0, -n); return &t }

func daysFromNow(n int) *time.Time { t := time.Now().AddDate(0, 0, n); return &t }

func bengaluruCompanies() []store.Company {
	return []store.Company{
		{
			Name: "Prestige Group", TickerSymbol: strPtr("PRESTIGE.NS"), Region: "IN",
			Industry: "Real Estate Development", Sector: "Real Estate",
			Website: "https://www.prestigeconstructions.com",
			Address: "The Falcon House, No. 1, Main Guard Cross Road, Bengaluru",
			Phone:   "+91-80-25591080", EmployeeCount: intPtr(1200),
			BusinessSummary: "One of South India's leading real estate developers with projects across residential, commercial, retail, leisure and hospitality segments.",
			MarketCap:       f64Ptr(60000000000), Revenue: f64Ptr(12000000000),
			GrowthRate: f64Ptr(15.3), ProfitMargin: f64Ptr(22.4),
			InnovativenessScore: f64Ptr(0.78), SustainabilityScore: f64Ptr(0.82),
			DataSource: "Manual Entry",
		},
		{
			Name: "Brigade Group", TickerSymbol: strPtr("BRIGADE.NS"), Region: "IN",
			Industry: "Real Estate Development", Sector: "Real Estate",
			Website: "https://www.brigadegroup.com",
			Address: "Brigade Gateway, 26/1, Dr. Rajkumar Road, Bengaluru",
			Phone:   "+91-80-41379200", EmployeeCount: intPtr(850),
			BusinessSummary: "Leading property developer focusing on residential, commercial, retail and hospitality sectors with projects in Bengaluru, Chennai, Hyderabad, and Mysore.",
			MarketCap:       f64Ptr(42000000000), Revenue: f64Ptr(8500000000),
			GrowthRate: f64Ptr(12.8), ProfitMargin: f64Ptr(18.6),
			InnovativenessScore: f64Ptr(0.73), SustainabilityScore: f64Ptr(0.76),
			DataSource: "Manual Entry",
		},
		{
			Name: "Sobha Limited", TickerSymbol: strPtr("SOBHA.NS"), Region: "IN",
			Industry: "Real Estate Development", Sector: "Real Estate",
			Website: "https://www.sobha.com",
			Address: "SOBHA House, Sarjapur-Marathahalli Outer Ring Road, Bengaluru",
			Phone:   "+91-80-49320000", EmployeeCount: intPtr(3000),
			BusinessSummary: "Leading backward integrated real estate developer with presence in 27 cities and 13 states in India, focusing on luxury residential projects.",
			MarketCap:       f64Ptr(38000000000), Revenue: f64Ptr(10000000000),
			GrowthRate: f64Ptr(11.5), ProfitMargin: f64Ptr(17.3),
			InnovativenessScore: f64Ptr(0.81), SustainabilityScore: f64Ptr(0.79),
			DataSource: "Manual Entry",
		},
		{
			Name: "Puravankara Limited", TickerSymbol: strPtr("PURVA.NS"), Region: "IN",
			Industry: "Real Estate Development", Sector: "Real Estate",
			Website: "https://www.puravankara.com",
			Address: "130/1, Ulsoor Road, Bengaluru",
			Phone:   "+91-80-25599000", EmployeeCount: intPtr(750),
			BusinessSummary: "Leading real estate company with a strong presence in Bengaluru, Chennai, Hyderabad, Pune and Kochi, with a focus on affordable and luxury housing.",
			MarketCap:       f64Ptr(28000000000), Revenue: f64Ptr(6500000000),
			GrowthRate: f64Ptr(9.2), ProfitMargin: f64Ptr(14.8),
			InnovativenessScore: f64Ptr(0.68), SustainabilityScore: f64Ptr(0.72),
			DataSource: "Manual Entry",
		},
		{
			Name: "Embassy Group", TickerSymbol: strPtr("EMBASSY.NSE"), Region: "IN",
			Industry: "Real Estate Development", Sector: "Real Estate",
			Website: "https://www.embassyindia.com",
			Address: "Embassy Point, 150, Infantry Road, Bengaluru",
			Phone:   "+91-80-22280881", EmployeeCount: intPtr(950),
			BusinessSummary: "Leading developer of commercial and residential real estate with significant portfolio of office parks, hotels, and residential properties across India.",
			MarketCap:       f64Ptr(120000000000), Revenue: f64Ptr(23000000000),
			GrowthRate: f64Ptr(18.7), ProfitMargin: f64Ptr(26.3),
			InnovativenessScore: f64Ptr(0.86), SustainabilityScore: f64Ptr(0.84),
			DataSource: "Manual Entry",
		},
		{
			Name: "Ahluwalia Contracts (India) Limited", TickerSymbol: strPtr("AHLUCONT.NS"), Region: "IN",
			Industry: "Construction", Sector: "Infrastructure",
			Website: "https://www.acilnet.com",
			Address: "4th Floor, Ahluwalia House, Plot No. 28, Bengaluru",
			Phone:   "+91-80-41132965", EmployeeCount: intPtr(2200),
			BusinessSummary: "Leading construction company specializing in commercial, residential, institutional and industrial projects across India.",
			MarketCap:       f64Ptr(30000000000), Revenue: f64Ptr(15000000000),
			GrowthRate: f64Ptr(8.7), ProfitMargin: f64Ptr(10.2),
			InnovativenessScore: f64Ptr(0.65), SustainabilityScore: f64Ptr(0.67),
			DataSource: "Manual Entry",
		},
		{
			Name: "Nagarjuna Construction Company", TickerSymbol: strPtr("NCC.NS"), Region: "IN",
			Industry: "Construction", Sector: "Infrastructure",
			Website: "https://www.ncclimited.com",
			Address: "NCC House, Madhapur, Bengaluru Office",
			Phone:   "+91-80-26566498", EmployeeCount: intPtr(3500),
			BusinessSummary: "Infrastructure construction company with operations in buildings, water, environment, transportation, irrigation, power, metals, mining and railways.",
			MarketCap:       f64Ptr(25000000000), Revenue: f64Ptr(18000000000),
			GrowthRate: f64Ptr(7.9), ProfitMargin: f64Ptr(8.5),
			InnovativenessScore: f64Ptr(0.61), SustainabilityScore: f64Ptr(0.65),
			DataSource: "Manual Entry",
		},
		{
			Name: "JMC Projects (India) Limited", TickerSymbol: strPtr("JMCPROJECT.NS"), Region: "IN",
			Industry: "Construction", Sector: "Infrastructure",
			Website: "https://www.jmcprojects.com",
			Address: "Bengaluru Regional Office, Koramangala",
			Phone:   "+91-80-40115611", EmployeeCount: intPtr(1800),
			BusinessSummary: "Leading construction company executing projects in buildings, factories, housing, road, bridges, water supply and irrigation sectors.",
			MarketCap:       f64Ptr(15000000000), Revenue: f64Ptr(9000000000),
			GrowthRate: f64Ptr(6.8), ProfitMargin: f64Ptr(7.2),
			InnovativenessScore: f64Ptr(0.59), SustainabilityScore: f64Ptr(0.64),
			DataSource: "Manual Entry",
		},
	}
}

func bengaluruFirms() []store.ArchitecturalFirm {
	return []store.ArchitecturalFirm{
		{
			FirmName: "Mindspace Architects", City: "Bengaluru", Region: "Karnataka",
			Specialization:  "Residential, Commercial, Institutional",
			NotableProjects: "Brigade Orchards Clubhouse, UVCE Centenary Building",
			KeyPersonnel:    "Ar. Sanjay Mohe, Ar. Vasuki Prakash, Ar. Suryanarayanan",
			Awards:          "IIA Award for Excellence in Architecture 2018, A+D Awards for Public Buildings 2021",
			COARegistrationID: strPtr("CA/2000/23456"),
			SourceURL:         "https://www.mindspacearchitects.com",
		},
		{
			FirmName: "Cadence Architects", City: "Bengaluru", Region: "Karnataka",
			Specialization:  "Residential, Commercial, Hospitality",
			NotableProjects: "Elastica House, The Shoreline Villas, The Library House",
			KeyPersonnel:    "Ar. Narendra Pirgal, Ar. Vikram Rajashekar, Ar. Smaran Mallesh",
			Awards:          "NDTV Design & Architecture Awards 2023, IIID Design Excellence Award 2019",
			COARegistrationID: strPtr("CA/2005/34215"),
			SourceURL:         "https://www.cadencearchitects.com",
		},
		{
			FirmName: "BetweenSpaces", City: "Bengaluru", Region: "Karnataka",
			Specialization:  "Residential, Interior Design, Urban Design",
			NotableProjects: "The Cuckoo's Nest, Badari Residence, Volume House",
			KeyPersonnel:    "Ar. Divya Ethirajan, Ar. Pramod Jaiswal",
			Awards:          "The Merit List 2022, JK AYA Awards for Young Architects 2017",
			COARegistrationID: strPtr("CA/2010/45268"),
			SourceURL:         "https://www.betweenspaces.in",
		},
		{
			FirmName: "Architecture Paradigm", City: "Bengaluru", Region: "Karnataka",
			Specialization:  "Institutional, Residential, Urban Planning",
			NotableProjects: "School of Sciences for Christ University, SDM Institute, Agastya International Foundation",
			KeyPersonnel:    "Ar. Sandeep J, Ar. Manoj Ladhad, Ar. Vimal Jain",
			Awards:          "World Architecture Community Award 2021, HUDCO Design Awards 2019",
			COARegistrationID: strPtr("CA/2003/27189"),
			SourceURL:         "https://www.architectureparadigm.com",
		},
	}
}

func bengaluruProjects() []store.RealEstateProject {
	return []store.RealEstateProject{
		{
			ProjectName: "Prestige Lakeside Habitat", DeveloperName: "Prestige Group",
			City: "Bengaluru", Region: "Karnataka", ProjectType: "Residential", Status: "Completed",
			RERARegistrationID: strPtr("PRM/KA/RERA/1251/446/PR/171014/000433"),
			LaunchDate:         daysAgo(1200), ExpectedCompletionDate: daysAgo(300),
			TotalAreaSqft:     f64Ptr(5200000),
			PricePerSqftRange: "7,500 - 8,500 INR",
			KeyFeatures:       "Lakefront apartments, 80 acres township, 3 & 4 BHK configurations, Clubhouse, Swimming pool, Gym",
			SourceURL:         "https://www.prestigeconstructions.com/projects/prestige-lakeside-habitat",
		},
		{
			ProjectName: "Brigade Meadows", DeveloperName: "Brigade Group",
			City: "Bengaluru", Region: "Karnataka", ProjectType: "Residential", Status: "Ongoing",
			RERARegistrationID: strPtr("PRM/KA/RERA/1251/310/PR/190729/002644"),
			LaunchDate:         daysAgo(800), ExpectedCompletionDate: daysFromNow(400),
			TotalAreaSqft:     f64Ptr(3600000),
			PricePerSqftRange: "6,200 - 7,100 INR",
			KeyFeatures:       "60 acres township, 1, 2 & 3 BHK apartments, School, Retail spaces, Healthcare facilities",
			SourceURL:         "https://www.brigadegroup.com/residential/bangalore/south-bangalore/brigade-meadows",
		},
		{
			ProjectName: "Sobha Dream Gardens", DeveloperName: "Sobha Limited",
			City: "Bengaluru", Region: "Karnataka", ProjectType: "Residential", Status: "Ongoing",
			RERARegistrationID: strPtr("PRM/KA/RERA/1251/309/PR/180519/001895"),
			LaunchDate:         daysAgo(900), ExpectedCompletionDate: daysFromNow(500),
			TotalAreaSqft:     f64Ptr(2800000),
			PricePerSqftRange: "7,000 - 7,600 INR",
			KeyFeatures:       "1, 2 & 3 BHK apartments, 28 acres development, Clubhouse, Swimming pool, Sports facilities",
			SourceURL:         "https://www.sobha.com/projects/sobha-dream-gardens",
		},
		{
			ProjectName: "Embassy Springs", DeveloperName: "Embassy Group",
			City: "Bengaluru", Region: "Karnataka", ProjectType: "Residential", Status: "Ongoing",
			RERARegistrationID: strPtr("PRM/KA/RERA/1251/446/PR/171128/000495"),
			LaunchDate:         daysAgo(1500), ExpectedCompletionDate: daysFromNow(900),
			TotalAreaSqft:     f64Ptr(8800000),
			PricePerSqftRange: "6,800 - 8,000 INR",
			KeyFeatures:       "288 acres township, Villa plots, Apartments, Golf course, International school, Hospital",
			SourceURL:         "https://www.embassysprings.com",
		},
		{
			ProjectName: "Purva Atmosphere", DeveloperName: "Puravankara Limited",
			City: "Bengaluru", Region: "Karnataka", ProjectType: "Residential", Status: "Under Construction",
			RERARegistrationID: strPtr("PRM/KA/RERA/1251/309/PR/190511/002460"),
			LaunchDate:         daysAgo(600), ExpectedCompletionDate: daysFromNow(700),
			TotalAreaSqft:     f64Ptr(2100000),
			PricePerSqftRange: "6,500 - 7,200 INR",
			KeyFeatures:       "2 & 3 BHK apartments, 14 acres development, BluNex Life (smart home features), Clubhouse, Sports arena",
			SourceURL:         "https://www.puravankara.com/projects/bengaluru/north-bangalore/purva-atmosphere",
		},
		{
			ProjectName: "Adarsh Palm Retreat", DeveloperName: "Adarsh Developers",
			City: "Bengaluru", Region: "Karnataka", ProjectType: "Residential", Status: "Completed",
			RERARegistrationID: strPtr("PRM/KA/RERA/1251/310/PR/131118/002193"),
			LaunchDate:         daysAgo(1800), ExpectedCompletionDate: daysAgo(500),
			TotalAreaSqft:     f64Ptr(4500000),
			PricePerSqftRange: "7,800 - 9,000 INR",
			KeyFeatures:       "Luxury villas and apartments, 72 acres township, Clubhouse, Swimming pool, Tennis courts",
			SourceURL:         "https://www.adarshdevelopers.com/projects/adarsh-palm-retreat",
		},
		{
			ProjectName: "Prestige Tech Cloud", DeveloperName: "Prestige Group",
			City: "Bengaluru", Region: "Karnataka", ProjectType: "Commercial", Status: "Ongoing",
			RERARegistrationID: strPtr("PRM/KA/RERA/1251/446/PR/200205/003112"),
			LaunchDate:         daysAgo(500), ExpectedCompletionDate: daysFromNow(600),
			TotalAreaSqft:     f64Ptr(1800000),
			PricePerSqftRange: "12,000 - 14,000 INR",
			KeyFeatures:       "Grade A office spaces, LEED Gold certification, High-speed elevators, 24x7 security, Power backup",
			SourceURL:         "https://www.prestigeconstructions.com/projects/prestige-tech-cloud",
		},
		{
			ProjectName: "Brigade Orchards", DeveloperName: "Brigade Group",
			City: "Bengaluru", Region: "Karnataka", ProjectType: "Mixed Use", Status: "Partially Completed",
			RERARegistrationID: strPtr("PRM/KA/RERA/1251/309/PR/170829/000214"),
			LaunchDate:         daysAgo(2200), ExpectedCompletionDate: daysFromNow(1100),
			TotalAreaSqft:     f64Ptr(12500000),
			PricePerSqftRange: "6,500 - 8,500 INR",
			KeyFeatures:       "130+ acres integrated township, Apartments, Villas, Office spaces, Sports arena, School, Hospital",
			SourceURL:         "https://www.brigadegroup.com/residential/bangalore/north-bangalore/brigade-orchards",
		},
	}
}

func bengaluruNews(companyIDs map[string]uint) []store.NewsArticle {
	linked := func(name string) *uint {
		if id, ok := companyIDs[name]; ok {
			return &id
		}
		return nil
	}

	return []store.NewsArticle{
		{
			CompanyID: linked("Prestige Group"),
			Title:     "Prestige Group Reports 28% YoY Growth in Q4 FY25",
			SourceName: "Economic Times Real Estate",
			SourceURL:  "https://realty.economictimes.indiatimes.com/news/prestige-group-q4-fy25-results",
			PublishedDate: daysAgo(15),
			Summary:       "Prestige Group announced a 28% year-on-year growth in revenue for Q4 FY25, with pre-sales value reaching ₹4,267 crore. The company launched 4 new projects in Bengaluru during the quarter.",
			SentimentScore: f64Ptr(0.72), SentimentLabel: "positive",
		},
		{
			CompanyID: linked("Brigade Group"),
			Title:     "Brigade Group to Invest ₹3,000 Crore in Bengaluru Commercial Projects",
			SourceName: "Business Standard",
			SourceURL:  "https://www.business-standard.com/article/companies/brigade-group-invest-3000cr-bengaluru",
			PublishedDate: daysAgo(22),
			Summary:       "Brigade Group has announced plans to invest approximately ₹3,000 crore over the next 3 years to develop 5 million sq ft of commercial space in Bengaluru, capitalizing on the growing demand for Grade A office spaces.",
			SentimentScore: f64Ptr(0.65), SentimentLabel: "positive",
		},
		{
			CompanyID: linked("Sobha Limited"),
			Title:     "Sobha Limited Focuses on Sustainable Development in New Projects",
			SourceName: "Indian Real Estate News",
			SourceURL:  "https://www.indianrealestate.com/news/sobha-sustainable-development-focus",
			PublishedDate: daysAgo(35),
			Summary:       "Sobha Limited has announced its renewed focus on sustainable development practices for all upcoming projects, with plans to achieve GRIHA 5-star rating for its new residential developments in Bengaluru.",
			SentimentScore: f64Ptr(0.68), SentimentLabel: "positive",
		},
		{
			CompanyID: linked("Embassy Group"),
			Title:     "Embassy Office Parks REIT Announces 4% Increase in Distributions",
			SourceName: "Financial Express",
			SourceURL:  "https://www.financialexpress.com/real-estate/embassy-reit-q4-distribution",
			PublishedDate: daysAgo(12),
			Summary:       "Embassy Office Parks REIT has announced a 4% YoY increase in distributions to unitholders for Q4 FY25, reflecting strong lease renewals and new occupier signings in their Bengaluru properties despite challenging market conditions.",
			SentimentScore: f64Ptr(0.58), SentimentLabel: "positive",
		},
		{
			CompanyID: linked("Puravankara Limited"),
			Title:     "Puravankara Limited Faces Approval Delays for New Bengaluru Project",
			SourceName: "Property News India",
			SourceURL:  "https://www.propertynewsindia.com/puravankara-approval-delays-bengaluru",
			PublishedDate: daysAgo(18),
			Summary:       "Puravankara Limited is experiencing delays in receiving environmental clearances for its upcoming residential project in North Bengaluru, potentially pushing the launch date by 3-4 months according to company officials.",
			SentimentScore: f64Ptr(-0.32), SentimentLabel: "negative",
		},
		{
			Industry:  "Real Estate Development",
			Title:     "Bengaluru Real Estate Market Shows Resilience Amid Rising Interest Rates",
			SourceName: "Housing News",
			SourceURL:  "https://housing.com/news/bengaluru-real-estate-market-q1-2025",
			PublishedDate: daysAgo(25),
			Summary:       "Despite rising home loan interest rates, the Bengaluru residential market has shown remarkable resilience with a 12% YoY growth in sales volume in Q1 2025, driven primarily by strong demand in the mid-premium segment.",
			SentimentScore: f64Ptr(0.61), SentimentLabel: "positive",
		},
		{
			Industry:  "Construction",
			Title:     "Construction Costs in Bengaluru Increase by 15% YoY",
			SourceName: "Construction World",
			SourceURL:  "https://www.constructionworld.in/bengaluru-construction-costs-2025",
			PublishedDate: daysAgo(40),
			Summary:       "Construction costs in Bengaluru have risen by approximately 15% year-on-year, primarily due to increasing raw material prices and labor costs, putting pressure on developers' margins and potentially leading to price increases for end consumers.",
			SentimentScore: f64Ptr(-0.28), SentimentLabel: "negative",
		},
		{
			Industry:  "Architecture",
			Title:     "Bengaluru Architects Embrace Climate-Responsive Design",
			SourceName: "Architecture & Design",
			SourceURL:  "https://www.architectureanddesign.com/bengaluru-climate-responsive-design",
			PublishedDate: daysAgo(55),
			Summary:       "Leading architectural firms in Bengaluru are increasingly adopting climate-responsive design principles, incorporating passive cooling techniques, rainwater harvesting, and sustainable materials to address the city's changing climate conditions.",
			SentimentScore: f64Ptr(0.75), SentimentLabel: "positive",
		},
	}
}

func bengaluruTrends() []store.MarketTrend {
	return []store.MarketTrend{
		{
			Industry: "Real Estate Development", Region: "IN",
			TrendDescription: "Mid-premium residential demand in Bengaluru grows 12% YoY despite rising home loan rates.",
			TrendType:        "demand", Source: "Housing News",
			SourceURL:      "https://housing.com/news/bengaluru-real-estate-market-q1-2025",
			PublishedDate:  daysAgo(25),
			SentimentScore: f64Ptr(0.61), RelevanceScore: f64Ptr(0.9),
		},
		{
			Industry: "Construction", Region: "IN",
			TrendDescription: "Raw material and labor costs push Bengaluru construction costs up 15% YoY, squeezing developer margins.",
			TrendType:        "cost", Source: "Construction World",
			SourceURL:      "https://www.constructionworld.in/bengaluru-construction-costs-2025",
			PublishedDate:  daysAgo(40),
			SentimentScore: f64Ptr(-0.28), RelevanceScore: f64Ptr(0.85),
		},
		{
			Industry: "Architecture & Planning", Region: "IN",
			TrendDescription: "Climate-responsive design with passive cooling and rainwater harvesting becomes standard practice among Bengaluru firms.",
			TrendType:        "design", Source: "Architecture & Design",
			SourceURL:      "https://www.architectureanddesign.com/bengaluru-climate-responsive-design",
			PublishedDate:  daysAgo(55),
			SentimentScore: f64Ptr(0.75), RelevanceScore: f64Ptr(0.8),
		},
		{
			Industry: "Real Estate Development", Region: "IN",
			TrendDescription: "Grade A office space absorption in Bengaluru accelerates as companies mandate return-to-office.",
			TrendType:        "demand", Source: "Business Standard",
			SourceURL:      "https://www.business-standard.com/article/real-estate/bengaluru-office-absorption-2025",
			PublishedDate:  daysAgo(10),
			SentimentScore: f64Ptr(0.55), RelevanceScore: f64Ptr(0.88),
		},
	}
}
