package project

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	p, err := NewProject(" Alpha ", "Billing revamp")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", p.Name())
	assert.True(t, p.IsActive())
	assert.Empty(t, p.MemberIDs())

	_, err = NewProject("", "x")
	assert.Error(t, err)
	_, err = NewProject(strings.Repeat("a", 101), "x")
	assert.Error(t, err)
}

func TestProject_Members(t *testing.T) {
	p, err := NewProject("Alpha", "")
	require.NoError(t, err)

	assert.True(t, p.AddMember(1))
	assert.False(t, p.AddMember(1))
	assert.True(t, p.AddMember(2))
	assert.Equal(t, []uint{1, 2}, p.MemberIDs())

	assert.True(t, p.RemoveMember(1))
	assert.False(t, p.RemoveMember(1))
	assert.Equal(t, []uint{2}, p.MemberIDs())
}

func TestProject_LeadAndLifecycle(t *testing.T) {
	p, err := NewProject("Alpha", "")
	require.NoError(t, err)

	lead := uint(4)
	p.SetLead(&lead)
	require.NotNil(t, p.LeadID())
	assert.Equal(t, uint(4), *p.LeadID())

	p.SetLead(nil)
	assert.Nil(t, p.LeadID())

	p.Deactivate()
	assert.False(t, p.IsActive())
	p.Activate()
	assert.True(t, p.IsActive())
}

func TestProject_SetSchedule(t *testing.T) {
	p, err := NewProject("Alpha", "")
	require.NoError(t, err)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	target := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, p.SetSchedule(&start, &target))
	assert.Equal(t, target, *p.TargetCompletion())

	assert.Error(t, p.SetSchedule(&target, &start))
	require.NoError(t, p.SetSchedule(nil, nil))
	assert.Nil(t, p.StartDate())
}

func TestProgress_CompletionPercentage(t *testing.T) {
	tests := []struct {
		name     string
		progress Progress
		want     float64
	}{
		{"no tickets", Progress{}, 0},
		{"half done", Progress{Total: 2, Completed: 1}, 50.0},
		{"one third", Progress{Total: 3, Completed: 1}, 33.3},
		{"two thirds", Progress{Total: 3, Completed: 2}, 66.7},
		{"all done", Progress{Total: 4, Completed: 4}, 100.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.progress.CompletionPercentage())
		})
	}
}
