package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		valid  bool
	}{
		{name: "new is valid", status: StatusNew, valid: true},
		{name: "in_progress is valid", status: StatusInProgress, valid: true},
		{name: "on_hold is valid", status: StatusOnHold, valid: true},
		{name: "finished is valid", status: StatusFinished, valid: true},
		{name: "canceled is valid", status: StatusCanceled, valid: true},
		{name: "empty is invalid", status: Status(""), valid: false},
		{name: "unknown value is invalid", status: Status("done"), valid: false},
		{name: "case matters", status: Status("New"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
		})
	}
}

func TestStatuses(t *testing.T) {
	statuses := Statuses()
	assert.Len(t, statuses, 5)
	for _, s := range statuses {
		assert.True(t, s.IsValid())
	}
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleRegular.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestTask_IsValid(t *testing.T) {
	valid := Task{Project: "x", Name: "build", Description: "compile", Status: StatusNew}
	assert.True(t, valid.IsValid())

	tests := []struct {
		name string
		task Task
	}{
		{name: "empty project", task: Task{Name: "n", Description: "d", Status: StatusNew}},
		{name: "empty name", task: Task{Project: "p", Description: "d", Status: StatusNew}},
		{name: "empty description", task: Task{Project: "p", Name: "n", Status: StatusNew}},
		{name: "invalid status", task: Task{Project: "p", Name: "n", Description: "d", Status: Status("bogus")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.task.IsValid())
		})
	}
}

func TestTask_Assignee(t *testing.T) {
	unassigned := Task{}
	assert.Equal(t, "", unassigned.Assignee())

	alice := "alice"
	assigned := Task{Username: &alice}
	assert.Equal(t, "alice", assigned.Assignee())
}

func TestTask_View(t *testing.T) {
	alice := "alice"
	task := Task{
		ID:          7,
		Project:     "X",
		Name:        "build",
		Description: "compile",
		Status:      StatusInProgress,
		Username:    &alice,
	}

	view := task.View()

	assert.Equal(t, int64(7), view.ID)
	assert.Equal(t, "X", view.Project)
	assert.Equal(t, "compile", view.Description)
	assert.Equal(t, "in_progress", view.Status)
	assert.Equal(t, &alice, view.Username)
}

func TestTask_ViewUnassigned(t *testing.T) {
	view := Task{ID: 1, Project: "X", Name: "n", Description: "d", Status: StatusNew}.View()
	assert.Nil(t, view.Username)
}

func TestCaller_IsAdmin(t *testing.T) {
	assert.True(t, Caller{Username: "root", Role: RoleAdmin}.IsAdmin())
	assert.False(t, Caller{Username: "alice", Role: RoleRegular}.IsAdmin())
}
