package editor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/jobdesk/internal/client/cvstore"
	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/common"
	"github.com/dmitrijs2005/jobdesk/internal/logging"
)

type SkillsEditor struct {
	*section[models.Skills]
}

func NewSkillsEditor(store *cvstore.Store, logger logging.Logger) *SkillsEditor {
	e := &SkillsEditor{section: newSection(store, logger, sectionDef[models.Skills]{
		origin:  cvstore.OriginSkills,
		extract: func(cv *models.CV) models.Skills { return cv.Skills.Clone() },
		clone:   models.Skills.Clone,
		patch: func(s models.Skills) models.CVPatch {
			return models.CVPatch{Skills: &s}
		},
	})}
	e.attach()
	return e
}

// Add appends skill to category. Surrounding whitespace is trimmed; empty
// input and exact duplicates are ignored and report false.
func (e *SkillsEditor) Add(category models.SkillCategory, skill string) (bool, error) {
	skill = strings.TrimSpace(skill)
	return e.edit(func(s *models.Skills) (bool, error) {
		list, err := skillList(s, category)
		if err != nil {
			return false, err
		}
		if skill == "" || slices.Contains(*list, skill) {
			return false, nil
		}
		*list = append(*list, skill)
		return true, nil
	})
}

// Remove drops every entry of category equal to skill. Removing an absent
// skill changes nothing and reports false.
func (e *SkillsEditor) Remove(category models.SkillCategory, skill string) (bool, error) {
	return e.edit(func(s *models.Skills) (bool, error) {
		list, err := skillList(s, category)
		if err != nil {
			return false, err
		}
		before := len(*list)
		*list = slices.DeleteFunc(*list, func(v string) bool { return v == skill })
		return len(*list) != before, nil
	})
}

func skillList(s *models.Skills, category models.SkillCategory) (*[]string, error) {
	list := s.List(category)
	if list == nil {
		return nil, common.NewGuardError(fmt.Sprintf("unknown skill category %q", category))
	}
	if *list == nil {
		*list = []string{}
	}
	return list, nil
}
