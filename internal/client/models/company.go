package models

import "time"

type Company struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Website     string     `json:"website,omitempty" yaml:"website,omitempty"`
	Industry    string     `json:"industry,omitempty" yaml:"industry,omitempty"`
	Size        string     `json:"size,omitempty" yaml:"size,omitempty"`
	Location    string     `json:"location,omitempty" yaml:"location,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	LinkedInURL string     `json:"linkedin_url,omitempty" yaml:"linkedin_url,omitempty"`
	CareersURL  string     `json:"careers_url,omitempty" yaml:"careers_url,omitempty"`
	EnrichedAt  *time.Time `json:"enriched_at,omitempty" yaml:"enriched_at,omitempty"`
}
