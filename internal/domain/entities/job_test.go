package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJob_WithNote(t *testing.T) {
	older := JobNote{ID: "N-1", Text: "first visit", Images: []string{"a.jpg"}}
	job := Job{ID: "J-1000", Notes: []JobNote{older}}

	updated := job.WithNote(JobNote{ID: "N-2", Text: "follow up"})

	require.Len(t, updated.Notes, 2)
	assert.Equal(t, "N-2", updated.Notes[0].ID)
	assert.Equal(t, older, updated.Notes[1])

	updated.Notes[1].Images[0] = "changed.jpg"
	assert.Equal(t, "a.jpg", job.Notes[0].Images[0], "original notes must not be shared")
	assert.Len(t, job.Notes, 1)
}

func TestJobPatch_Apply(t *testing.T) {
	job := Job{ID: "J-1000", Title: "Hood", CustomerID: "CUST-1000", Status: JobStatusPending}

	blank := ""
	title := "Hood refit"
	status := JobStatusCompleted
	got := JobPatch{Title: &title, CustomerID: &blank, Status: &status}.Apply(job)

	assert.Equal(t, "J-1000", got.ID)
	assert.Equal(t, "Hood refit", got.Title)
	assert.Equal(t, "CUST-1000", got.CustomerID, "blank customer id keeps the grouping key")
	assert.Equal(t, JobStatusCompleted, got.Status)
	assert.Equal(t, "Hood", job.Title)

	override := "CUST-2000"
	got = JobPatch{CustomerID: &override}.Apply(job)
	assert.Equal(t, "CUST-2000", got.CustomerID)
}

func TestProjectCustomers_FirstSeenWins(t *testing.T) {
	jobs := []Job{
		{ID: "J-1", CustomerID: "CUST-1000", CustomerName: "Mick's Café", CustomerPhone: "0111"},
		{ID: "J-2", CustomerID: "CUST-2000", CustomerName: "Rose Diner"},
		{ID: "J-3", CustomerID: "CUST-1000", CustomerName: "Mick's Cafe Ltd", CustomerPhone: "0999"},
	}

	got := ProjectCustomers(jobs)

	require.Len(t, got, 2)
	assert.Equal(t, CustomerProfile{ID: "CUST-1000", Name: "Mick's Café", Phone: "0111"}, got[0])
	assert.Equal(t, "CUST-2000", got[1].ID)
	assert.Empty(t, ProjectCustomers(nil))
}

func TestNoteAuthorFor(t *testing.T) {
	assert.Equal(t, NoteAuthorStaff, NoteAuthorFor(UserRoleAdmin))
	assert.Equal(t, NoteAuthorCustomer, NoteAuthorFor(UserRoleCustomer))
}

func TestDemoJobs(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	jobs := DemoJobs(now)
	require.Len(t, jobs, 2)
	assert.Equal(t, "2025-02-15", jobs[1].WarrantyEndDate)
	assert.Equal(t, jobs[0].CustomerID, jobs[1].CustomerID)
}

func TestProfilePatch_Apply(t *testing.T) {
	u, ok := CannedUser(UserRoleCustomer)
	require.True(t, ok)

	phone := "07000"
	got := ProfilePatch{Phone: &phone}.Apply(u)
	assert.Equal(t, "07000", got.Phone)
	assert.Equal(t, u.Name, got.Name)

	_, ok = CannedUser(UserRole("GUEST"))
	assert.False(t, ok)
}
