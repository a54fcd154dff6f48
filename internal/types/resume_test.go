package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResume_PresenceHelpers_Absent(t *testing.T) {
	r := &Resume{}

	assert.False(t, r.HasWork())
	assert.False(t, r.HasEducation())
	assert.False(t, r.HasCertificates())
	assert.False(t, r.HasAwards())
	assert.False(t, r.HasSkills())
	assert.False(t, r.HasProjects())
}

func TestResume_PresenceHelpers_EmptyButPresent(t *testing.T) {
	r := &Resume{
		Work:         []Work{},
		Education:    []Education{},
		Certificates: []Certificate{},
		Awards:       []Award{},
		Skills:       []Skill{},
		Projects:     []Project{},
	}

	assert.True(t, r.HasWork())
	assert.True(t, r.HasEducation())
	assert.True(t, r.HasCertificates())
	assert.True(t, r.HasAwards())
	assert.True(t, r.HasSkills())
	assert.True(t, r.HasProjects())
}
