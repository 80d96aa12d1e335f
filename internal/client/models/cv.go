package models

import (
	"slices"
	"time"
)

type ContactInfo struct {
	FullName     string `json:"full_name" yaml:"full_name"`
	Email        string `json:"email" yaml:"email"`
	Phone        string `json:"phone" yaml:"phone"`
	Location     string `json:"location" yaml:"location"`
	LinkedInURL  string `json:"linkedin_url" yaml:"linkedin_url"`
	GitHubURL    string `json:"github_url" yaml:"github_url"`
	PortfolioURL string `json:"portfolio_url" yaml:"portfolio_url"`
}

// SkillCategory names one of the five skill lists.
type SkillCategory string

const (
	SkillsTechnical      SkillCategory = "technical_skills"
	SkillsSoft           SkillCategory = "soft_skills"
	SkillsTools          SkillCategory = "tools"
	SkillsLanguages      SkillCategory = "languages"
	SkillsCertifications SkillCategory = "certifications"
)

// SkillCategories lists the categories in display order.
var SkillCategories = []SkillCategory{
	SkillsTechnical,
	SkillsSoft,
	SkillsTools,
	SkillsLanguages,
	SkillsCertifications,
}

type Skills struct {
	TechnicalSkills []string `json:"technical_skills" yaml:"technical_skills"`
	SoftSkills      []string `json:"soft_skills" yaml:"soft_skills"`
	Tools           []string `json:"tools" yaml:"tools"`
	Languages       []string `json:"languages" yaml:"languages"`
	Certifications  []string `json:"certifications" yaml:"certifications"`
}

// List returns a pointer to the list for category, or nil when the category
// is unknown.
func (s *Skills) List(category SkillCategory) *[]string {
	switch category {
	case SkillsTechnical:
		return &s.TechnicalSkills
	case SkillsSoft:
		return &s.SoftSkills
	case SkillsTools:
		return &s.Tools
	case SkillsLanguages:
		return &s.Languages
	case SkillsCertifications:
		return &s.Certifications
	}
	return nil
}

// Clone returns a deep copy. Nil lists become empty lists so the draft
// always serialises every category as an array.
func (s Skills) Clone() Skills {
	cp := func(in []string) []string {
		if in == nil {
			return []string{}
		}
		return slices.Clone(in)
	}
	return Skills{
		TechnicalSkills: cp(s.TechnicalSkills),
		SoftSkills:      cp(s.SoftSkills),
		Tools:           cp(s.Tools),
		Languages:       cp(s.Languages),
		Certifications:  cp(s.Certifications),
	}
}

type Summary struct {
	Text string `json:"text" yaml:"text"`
}

// CV is the server-authoritative document.
type CV struct {
	ID          string      `json:"id" yaml:"id"`
	UserID      string      `json:"user_id" yaml:"user_id"`
	ContactInfo ContactInfo `json:"contact_info" yaml:"contact_info"`
	Skills      Skills      `json:"skills" yaml:"skills"`
	Summary     Summary     `json:"summary" yaml:"summary"`
	UpdatedAt   time.Time   `json:"updated_at" yaml:"updated_at"`
}

// CVPatch carries exactly one section of the CV; nil sections are omitted
// from the request body.
type CVPatch struct {
	ContactInfo *ContactInfo `json:"contact_info,omitempty"`
	Skills      *Skills      `json:"skills,omitempty"`
	Summary     *Summary     `json:"summary,omitempty"`
}

type EnhanceSummaryRequest struct {
	Text string `json:"text"`
}

type EnhanceSummaryResponse struct {
	SummaryEnhancement string `json:"summary_enhancement"`
}
