package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/common"
)

func TestSkills_AddTrimsAndAppends(t *testing.T) {
	store, _ := loadedStore(t)
	e := NewSkillsEditor(store, nil)

	added, err := e.Add(models.SkillsTechnical, "  Kubernetes ")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, e.Dirty())
	assert.Equal(t, []string{"Go", "SQL", "Kubernetes"}, e.Draft().TechnicalSkills)
}

func TestSkills_AddToEmptyCategory(t *testing.T) {
	store, _ := loadedStore(t)
	e := NewSkillsEditor(store, nil)

	added, err := e.Add(models.SkillsCertifications, "CKA")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"CKA"}, e.Draft().Certifications)
}

func TestSkills_DuplicateIsNoop(t *testing.T) {
	store, _ := loadedStore(t)
	e := NewSkillsEditor(store, nil)

	added, err := e.Add(models.SkillsTechnical, " Go")
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, e.Dirty())
	assert.Equal(t, []string{"Go", "SQL"}, e.Draft().TechnicalSkills)
}

func TestSkills_BlankIsNoop(t *testing.T) {
	store, _ := loadedStore(t)
	e := NewSkillsEditor(store, nil)

	added, err := e.Add(models.SkillsSoft, "   ")
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, e.Dirty())
}

func TestSkills_DedupeIsCaseSensitive(t *testing.T) {
	store, _ := loadedStore(t)
	e := NewSkillsEditor(store, nil)

	added, err := e.Add(models.SkillsTechnical, "go")
	require.NoError(t, err)
	assert.True(t, added)
}

func TestSkills_RemovePresent(t *testing.T) {
	store, _ := loadedStore(t)
	e := NewSkillsEditor(store, nil)

	removed, err := e.Remove(models.SkillsTechnical, "Go")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.True(t, e.Dirty())
	assert.Equal(t, []string{"SQL"}, e.Draft().TechnicalSkills)
}

func TestSkills_RemoveAbsentIsNoop(t *testing.T) {
	store, _ := loadedStore(t)
	e := NewSkillsEditor(store, nil)

	removed, err := e.Remove(models.SkillsTechnical, "Rust")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.False(t, e.Dirty())
	assert.Equal(t, []string{"Go", "SQL"}, e.Draft().TechnicalSkills)
}

func TestSkills_UnknownCategory(t *testing.T) {
	store, _ := loadedStore(t)
	e := NewSkillsEditor(store, nil)

	_, err := e.Add("hobbies", "chess")
	require.ErrorIs(t, err, common.ErrGuard)
	_, err = e.Remove("hobbies", "chess")
	require.ErrorIs(t, err, common.ErrGuard)
	assert.False(t, e.Dirty())
}

func TestSkills_SaveSendsEveryCategory(t *testing.T) {
	store, fc := loadedStore(t)
	e := NewSkillsEditor(store, nil)
	_, err := e.Add(models.SkillsLanguages, "Latvian")
	require.NoError(t, err)

	require.NoError(t, e.Save(t.Context()))

	sent := fc.lastPatch(t).Skills
	require.NotNil(t, sent)
	assert.Equal(t, []string{"Go", "SQL"}, sent.TechnicalSkills)
	assert.Equal(t, []string{"Mentoring"}, sent.SoftSkills)
	assert.Equal(t, []string{}, sent.Tools)
	assert.Equal(t, []string{"Latvian"}, sent.Languages)
	assert.Equal(t, []string{}, sent.Certifications)
	assert.False(t, e.Dirty())
}
