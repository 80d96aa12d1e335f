package editor

import (
	"fmt"

	"github.com/dmitrijs2005/jobdesk/internal/client/cvstore"
	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/common"
	"github.com/dmitrijs2005/jobdesk/internal/logging"
)

// ContactField names an editable contact attribute by its wire name.
type ContactField string

const (
	FieldFullName     ContactField = "full_name"
	FieldEmail        ContactField = "email"
	FieldPhone        ContactField = "phone"
	FieldLocation     ContactField = "location"
	FieldLinkedInURL  ContactField = "linkedin_url"
	FieldGitHubURL    ContactField = "github_url"
	FieldPortfolioURL ContactField = "portfolio_url"
)

// ContactFields lists the fields in display order.
var ContactFields = []ContactField{
	FieldFullName, FieldEmail, FieldPhone, FieldLocation,
	FieldLinkedInURL, FieldGitHubURL, FieldPortfolioURL,
}

type ContactEditor struct {
	*section[models.ContactInfo]
}

func NewContactEditor(store *cvstore.Store, logger logging.Logger) *ContactEditor {
	e := &ContactEditor{section: newSection(store, logger, sectionDef[models.ContactInfo]{
		origin:  cvstore.OriginContact,
		extract: func(cv *models.CV) models.ContactInfo { return cv.ContactInfo },
		clone:   func(c models.ContactInfo) models.ContactInfo { return c },
		patch: func(c models.ContactInfo) models.CVPatch {
			return models.CVPatch{ContactInfo: &c}
		},
	})}
	e.attach()
	return e
}

// Set replaces one field of the draft and marks it dirty.
func (e *ContactEditor) Set(field ContactField, value string) error {
	_, err := e.edit(func(c *models.ContactInfo) (bool, error) {
		dst := contactField(c, field)
		if dst == nil {
			return false, common.NewGuardError(fmt.Sprintf("unknown contact field %q", field))
		}
		*dst = value
		return true, nil
	})
	return err
}

func contactField(c *models.ContactInfo, field ContactField) *string {
	switch field {
	case FieldFullName:
		return &c.FullName
	case FieldEmail:
		return &c.Email
	case FieldPhone:
		return &c.Phone
	case FieldLocation:
		return &c.Location
	case FieldLinkedInURL:
		return &c.LinkedInURL
	case FieldGitHubURL:
		return &c.GitHubURL
	case FieldPortfolioURL:
		return &c.PortfolioURL
	}
	return nil
}
