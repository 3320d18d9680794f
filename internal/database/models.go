package database

import (
	"time"

	"gorm.io/gorm"
)

// QueryLog is the audit trail of every search, successful or not. The
// raw response is retained verbatim for operator diagnostics and is
// never re-parsed.
type QueryLog struct {
	gorm.Model
	CaseType     string    `json:"case_type"`
	CaseNumber   string    `json:"case_number"`
	FilingYear   string    `json:"filing_year"`
	RawResponse  string    `json:"raw_response" gorm:"type:text"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"error_message"`
	QueryTime    time.Time `json:"query_time"`
	IPAddress    string    `json:"ip_address"`
}

// CaseRecord holds the fields extracted from a successful search. Dates
// are stored exactly as the court site rendered them; normalization is a
// display concern.
type CaseRecord struct {
	gorm.Model
	QueryLogID      uint           `json:"query_log_id"`
	CaseType        string         `json:"case_type"`
	CaseNumber      string         `json:"case_number" gorm:"index"`
	FilingYear      string         `json:"filing_year"`
	PartiesNames    string         `json:"parties_names"`
	FilingDate      string         `json:"filing_date"`
	NextHearingDate string         `json:"next_hearing_date"`
	CaseStatus      string         `json:"case_status"`
	Documents       []DocumentLink `json:"documents" gorm:"foreignKey:CaseRecordID"`
}

// DocumentLink is a persisted pointer to a retrievable court document.
type DocumentLink struct {
	gorm.Model
	CaseRecordID uint   `json:"case_record_id"`
	URL          string `json:"url"`
	Title        string `json:"title"`
	DocumentType string `json:"document_type"`
}

func (QueryLog) TableName() string {
	return "query_logs"
}

func (CaseRecord) TableName() string {
	return "case_records"
}

func (DocumentLink) TableName() string {
	return "document_links"
}
