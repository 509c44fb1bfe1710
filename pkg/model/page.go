package model

import "time"

type Page struct {
	Leads          []LeadView `json:"leads"`
	Index          int        `json:"index"`
	CurrentPage    int        `json:"current_page"`
	TotalPages     int        `json:"total_pages"`
	TotalRecords   int        `json:"total_records"`
	HasPrevious    bool       `json:"has_previous"`
	HasNext        bool       `json:"has_next"`
	ShowNavigation bool       `json:"show_navigation"`
}

type Session struct {
	ID        string         `json:"id"`
	Criteria  FilterCriteria `json:"criteria"`
	PageIndex int            `json:"page_index"`
	CreatedAt time.Time      `json:"created_at"`
	LastSeen  time.Time      `json:"last_seen"`
}

type BrowseResult struct {
	SessionID string         `json:"session_id"`
	Criteria  FilterCriteria `json:"criteria"`
	Page      Page           `json:"page"`
}

type Options struct {
	Cities        []string `json:"cities"`
	Neighborhoods []string `json:"neighborhoods"`
	MinScore      int      `json:"min_score"`
	MaxScore      int      `json:"max_score"`
	DefaultScore  int      `json:"default_score"`
	TotalLeads    int      `json:"total_leads"`
}
