package auth

import (
	"testing"

	"taskmanager/internal/domain"

	"github.com/stretchr/testify/assert"
)

var (
	adminCaller = domain.Caller{Username: "root", Role: domain.RoleAdmin}
	aliceCaller = domain.Caller{Username: "alice", Role: domain.RoleRegular}
)

func taskAssignedTo(username string) domain.Task {
	task := domain.Task{ID: 1, Project: "X", Name: "build", Description: "compile", Status: domain.StatusNew}
	if username != "" {
		task.Username = &username
	}
	return task
}

func TestPolicy_CanListAll(t *testing.T) {
	policy := NewPolicy()

	assert.True(t, policy.CanListAll(adminCaller))
	assert.False(t, policy.CanListAll(aliceCaller))
}

func TestPolicy_CanListForUsername(t *testing.T) {
	policy := NewPolicy()

	tests := []struct {
		name    string
		caller  domain.Caller
		target  string
		allowed bool
	}{
		{name: "admin may list anyone", caller: adminCaller, target: "alice", allowed: true},
		{name: "admin may list unspecified", caller: adminCaller, target: "", allowed: true},
		{name: "regular may list self", caller: aliceCaller, target: "alice", allowed: true},
		{name: "regular may list unspecified (own tasks)", caller: aliceCaller, target: "", allowed: true},
		{name: "regular may not list others", caller: aliceCaller, target: "bob", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, policy.CanListForUsername(tt.caller, tt.target))
		})
	}
}

func TestPolicy_CanCreate(t *testing.T) {
	policy := NewPolicy()

	assert.True(t, policy.CanCreate(adminCaller))
	assert.False(t, policy.CanCreate(aliceCaller))
}

func TestPolicy_CanMutate(t *testing.T) {
	policy := NewPolicy()

	tests := []struct {
		name    string
		caller  domain.Caller
		task    domain.Task
		allowed bool
	}{
		{name: "admin may mutate any task", caller: adminCaller, task: taskAssignedTo("bob"), allowed: true},
		{name: "admin may mutate unassigned task", caller: adminCaller, task: taskAssignedTo(""), allowed: true},
		{name: "owner may mutate own task", caller: aliceCaller, task: taskAssignedTo("alice"), allowed: true},
		{name: "regular may not mutate another's task", caller: aliceCaller, task: taskAssignedTo("bob"), allowed: false},
		{name: "regular may not mutate unassigned task", caller: aliceCaller, task: taskAssignedTo(""), allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, policy.CanMutate(tt.caller, tt.task))
		})
	}
}

func TestPolicy_CanDelete(t *testing.T) {
	policy := NewPolicy()

	assert.True(t, policy.CanDelete(adminCaller))

	// Deletion stays admin-only even for the task's owner.
	assert.False(t, policy.CanDelete(aliceCaller))
}

func TestPolicy_AllowedEditFields(t *testing.T) {
	policy := NewPolicy()

	adminFields := policy.AllowedEditFields(adminCaller)
	for _, field := range []string{"project", "name", "description", "status", "username"} {
		assert.True(t, adminFields.Contains(field), "admin should edit %s", field)
	}
	assert.False(t, adminFields.Contains("id"))

	regularFields := policy.AllowedEditFields(aliceCaller)
	assert.True(t, regularFields.Contains("status"))
	for _, field := range []string{"project", "name", "description", "username"} {
		assert.False(t, regularFields.Contains(field), "regular should not edit %s", field)
	}
}
