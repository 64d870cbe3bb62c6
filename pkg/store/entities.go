package store

import "time"

// Lead qualification outcomes.
const (
	StatusQualified    = "Qualified"
	StatusDisqualified = "Disqualified"
)

// Lead workflow states. New leads start in WorkflowNew; leads disqualified at
// creation time are archived immediately.
const (
	WorkflowNew      = "New"
	WorkflowArchived = "Archived"
)

// Company is a tracked business, unique by name or ticker symbol. Nullable
// numeric columns are pointers so an absent metric is distinguishable from
// zero.
type Company struct {
	ID                    uint    `gorm:"primaryKey" json:"company_id"`
	Name                  string  `gorm:"uniqueIndex;not null" json:"name"`
	TickerSymbol          *string `gorm:"uniqueIndex" json:"ticker_symbol,omitempty"`
	Region                string  `json:"region,omitempty"`
	Industry              string  `gorm:"index" json:"industry,omitempty"`
	Sector                string  `json:"sector,omitempty"`
	Website               string  `json:"website,omitempty"`
	Address               string  `json:"address,omitempty"`
	Phone                 string  `json:"phone,omitempty"`
	EmployeeCount         *int    `json:"employee_count,omitempty"`
	BusinessSummary       string  `json:"business_summary,omitempty"`
	MarketCap             *float64 `json:"market_cap,omitempty"`
	Revenue               *float64 `json:"revenue,omitempty"`
	GrowthRate            *float64 `json:"growth_rate,omitempty"`
	ProfitMargin          *float64 `json:"profit_margin,omitempty"`
	InnovativenessScore   *float64 `json:"innovativeness_score,omitempty"`
	HiringScore           *float64 `json:"hiring_score,omitempty"`
	SustainabilityScore   *float64 `json:"sustainability_score,omitempty"`
	InsiderSentimentScore *float64 `json:"insider_sentiment_score,omitempty"`
	LastUpdated           time.Time `json:"last_updated"`
	DataSource            string    `json:"data_source,omitempty"`

	Officers []CompanyOfficer `gorm:"constraint:OnDelete:CASCADE" json:"officers,omitempty"`
	News     []NewsArticle    `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

// CompanyOfficer is an executive record attached to a company. Officers are
// replaced wholesale when fresh profile data arrives and cascade-delete with
// their company.
type CompanyOfficer struct {
	ID               uint     `gorm:"primaryKey" json:"officer_id"`
	CompanyID        uint     `gorm:"index;not null" json:"company_id"`
	Name             string   `json:"name,omitempty"`
	Title            string   `json:"title,omitempty"`
	Age              *int     `json:"age,omitempty"`
	YearBorn         *int     `json:"year_born,omitempty"`
	FiscalYear       *int     `json:"fiscal_year,omitempty"`
	TotalPay         *float64 `json:"total_pay,omitempty"`
	ExercisedValue   *float64 `json:"exercised_value,omitempty"`
	UnexercisedValue *float64 `json:"unexercised_value,omitempty"`
	LastUpdated      time.Time `json:"last_updated"`
}

// MarketTrend is a collected trend observation for an industry/region.
type MarketTrend struct {
	ID               uint       `gorm:"primaryKey" json:"trend_id"`
	Industry         string     `gorm:"index" json:"industry,omitempty"`
	Region           string     `json:"region,omitempty"`
	TrendDescription string     `gorm:"not null" json:"trend_description"`
	TrendType        string     `json:"trend_type,omitempty"`
	Source           string     `json:"source,omitempty"`
	SourceURL        string     `json:"source_url,omitempty"`
	PublishedDate    *time.Time `json:"published_date,omitempty"`
	CollectedDate    time.Time  `json:"collected_date"`
	SentimentScore   *float64   `json:"sentiment_score,omitempty"`
	RelevanceScore   *float64   `json:"relevance_score,omitempty"`
}

// NewsArticle is a collected article, unique by source URL, optionally linked
// to a company. The link nulls out when the company is deleted.
type NewsArticle struct {
	ID             uint       `gorm:"primaryKey" json:"article_id"`
	CompanyID      *uint      `gorm:"index" json:"company_id,omitempty"`
	Industry       string     `json:"industry,omitempty"`
	Topic          string     `json:"topic,omitempty"`
	Title          string     `gorm:"not null" json:"title"`
	SourceName     string     `json:"source_name,omitempty"`
	SourceURL      string     `gorm:"uniqueIndex;not null" json:"source_url"`
	PublishedDate  *time.Time `gorm:"index" json:"published_date,omitempty"`
	Summary        string     `json:"summary,omitempty"`
	SentimentScore *float64   `json:"sentiment_score,omitempty"`
	SentimentLabel string     `json:"sentiment_label,omitempty"`
	CollectedDate  time.Time  `json:"collected_date"`
}

// ICP is a named ideal-customer-profile with serialized matching criteria.
type ICP struct {
	ID           uint       `gorm:"primaryKey" json:"icp_id"`
	ProfileName  string     `gorm:"uniqueIndex;not null" json:"profile_name"`
	CriteriaJSON string     `gorm:"not null" json:"criteria_json"`
	CreatedAt    time.Time  `json:"created_at"`
	LastUsed     *time.Time `json:"last_used,omitempty"`

	Leads []Lead `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

// Lead is the persisted outcome of qualifying one company against one ICP.
// At most one lead exists per (company name, ICP) pair, enforced by a
// lookup-before-insert check in the qualifier.
type Lead struct {
	ID                  uint       `gorm:"primaryKey" json:"lead_id"`
	ICPID               *uint      `gorm:"index" json:"icp_id,omitempty"`
	CompanyName         string     `json:"company_name,omitempty"`
	ContactName         string     `json:"contact_name,omitempty"`
	JobTitle            string     `json:"job_title,omitempty"`
	Industry            string     `gorm:"index" json:"industry,omitempty"`
	CompanySize         string     `json:"company_size,omitempty"`
	Region              string     `json:"region,omitempty"`
	Website             string     `json:"website,omitempty"`
	Email               string     `json:"email,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	LinkedinProfile     string     `json:"linkedin_profile,omitempty"`
	Source              string     `json:"source,omitempty"`
	QualificationStatus string     `json:"qualification_status,omitempty"`
	QualificationReason string     `json:"qualification_reason,omitempty"`
	Score               float64    `json:"score"`
	EngagementLevel     *float64   `json:"engagement_level,omitempty"`
	TechnologiesUsed    string     `json:"technologies_used,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	CollectedDate       time.Time  `json:"collected_date"`
	LastContacted       *time.Time `json:"last_contacted,omitempty"`
	Status              string     `gorm:"default:New" json:"status"`
}

// RealEstateProject is an India-specific enrichment entity, unique by RERA
// registration id when present, else by project name + developer name.
type RealEstateProject struct {
	ID                     uint       `gorm:"primaryKey" json:"project_id"`
	ProjectName            string     `gorm:"not null" json:"project_name"`
	DeveloperID            *uint      `json:"developer_id,omitempty"`
	Developer              *Company   `gorm:"foreignKey:DeveloperID;constraint:OnDelete:SET NULL" json:"-"`
	DeveloperName          string     `json:"developer_name,omitempty"`
	City                   string     `gorm:"index" json:"city,omitempty"`
	Region                 string     `json:"region,omitempty"`
	ProjectType            string     `json:"project_type,omitempty"`
	Status                 string     `json:"status,omitempty"`
	RERARegistrationID     *string    `gorm:"column:rera_registration_id;uniqueIndex" json:"rera_registration_id,omitempty"`
	LaunchDate             *time.Time `json:"launch_date,omitempty"`
	ExpectedCompletionDate *time.Time `json:"expected_completion_date,omitempty"`
	TotalAreaSqft          *float64   `json:"total_area_sqft,omitempty"`
	PricePerSqftRange      string     `json:"price_per_sqft_range,omitempty"`
	KeyFeatures            string     `json:"key_features,omitempty"`
	SourceURL              string     `json:"source_url,omitempty"`
	CollectedDate          time.Time  `json:"collected_date"`
}

// ArchitecturalFirm is an India-specific enrichment entity, unique by COA
// registration id when present, else by firm name. Firms cascade-delete with
// their linked company.
type ArchitecturalFirm struct {
	ID                uint      `gorm:"primaryKey" json:"firm_id"`
	CompanyID         *uint     `gorm:"uniqueIndex" json:"company_id,omitempty"`
	Company           *Company  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FirmName          string    `gorm:"not null" json:"firm_name"`
	City              string    `gorm:"index" json:"city,omitempty"`
	Region            string    `json:"region,omitempty"`
	Specialization    string    `json:"specialization,omitempty"`
	NotableProjects   string    `json:"notable_projects,omitempty"`
	KeyPersonnel      string    `json:"key_personnel,omitempty"`
	Awards            string    `json:"awards,omitempty"`
	COARegistrationID *string   `gorm:"column:coa_registration_id" json:"coa_registration_id,omitempty"`
	SourceURL         string    `json:"source_url,omitempty"`
	CollectedDate     time.Time `json:"collected_date"`
}

// AnalysisResult is a persisted snapshot of a generated analysis or report.
type AnalysisResult struct {
	ID               uint      `gorm:"primaryKey" json:"result_id"`
	AnalysisType     string    `gorm:"not null" json:"analysis_type"`
	TargetEntityID   *uint     `json:"target_entity_id,omitempty"`
	TargetEntityName string    `json:"target_entity_name,omitempty"`
	ResultJSON       string    `gorm:"not null" json:"result_json"`
	GeneratedAt      time.Time `json:"generated_at"`
}
