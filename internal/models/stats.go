package models

// SiteStats holds site-wide counters. There is a single row with ID 1.
type SiteStats struct {
	ID        int    `gorm:"primaryKey;column:id"`
	Followers uint64 `gorm:"not null;default:0;column:followers"`
}

// TableName specifies the table name for SiteStats
func (SiteStats) TableName() string {
	return "site_stats"
}

// SiteStatsID is the primary key of the single SiteStats row
const SiteStatsID = 1
