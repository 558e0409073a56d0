package e2e

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_Create_OwnerBecomesAdminMember(t *testing.T) {
	ownerId := registerUser(t, "e2e-proj-owner@example.com")

	reqBody := map[string]interface{}{
		"title":    "Website Redesign",
		"owner_id": ownerId,
	}

	resp := makeRequest(t, http.MethodPost, baseURL+"/projects/create", reqBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	result := parseBody(t, resp)
	require.Contains(t, result, "project")
	require.Contains(t, result, "members")

	project, ok := result["project"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Website Redesign", project["title"])
	assert.Equal(t, ownerId, project["owner_id"])
	assert.NotEmpty(t, project["color"])

	members, ok := result["members"].([]interface{})
	require.True(t, ok)
	require.Len(t, members, 1)

	member := members[0].(map[string]interface{})
	assert.Equal(t, ownerId, member["user_id"])
	assert.Equal(t, "admin", member["role"])
}

func TestProject_Create_OwnerNotFound(t *testing.T) {
	reqBody := map[string]interface{}{
		"title":    "Orphan Project",
		"owner_id": uuid.New().String(),
	}

	resp := makeRequest(t, http.MethodPost, baseURL+"/projects/create", reqBody)
	defer resp.Body.Close()

	validateErrorResponse(t, resp, "NOT_FOUND", http.StatusNotFound)
}

func TestProject_AddMember_AndGet(t *testing.T) {
	ownerId := registerUser(t, "e2e-proj-add-owner@example.com")
	memberId := registerUser(t, "e2e-proj-add-member@example.com")
	projectId := createProject(t, "Team Project", ownerId)

	addBody := map[string]interface{}{
		"project_id": projectId,
		"user_id":    memberId,
		"role":       "viewer",
	}

	addResp := makeRequest(t, http.MethodPost, baseURL+"/projects/addMember", addBody)
	addResp.Body.Close()
	require.Equal(t, http.StatusCreated, addResp.StatusCode)

	getResp := makeRequest(t, http.MethodGet, baseURL+"/projects/get?project_id="+projectId, nil)
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusOK, getResp.StatusCode)

	result := parseBody(t, getResp)
	members := result["members"].([]interface{})
	assert.Len(t, members, 2)
}

func TestProject_AddMember_Twice(t *testing.T) {
	ownerId := registerUser(t, "e2e-proj-twice-owner@example.com")
	memberId := registerUser(t, "e2e-proj-twice-member@example.com")
	projectId := createProject(t, "Twice Project", ownerId)

	addBody := map[string]interface{}{
		"project_id": projectId,
		"user_id":    memberId,
	}

	first := makeRequest(t, http.MethodPost, baseURL+"/projects/addMember", addBody)
	first.Body.Close()
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := makeRequest(t, http.MethodPost, baseURL+"/projects/addMember", addBody)
	defer second.Body.Close()

	validateErrorResponse(t, second, "ALREADY_MEMBER", http.StatusConflict)
}

func TestProject_RemoveMember_Owner(t *testing.T) {
	ownerId := registerUser(t, "e2e-proj-rmowner@example.com")
	projectId := createProject(t, "Owner Project", ownerId)

	reqBody := map[string]interface{}{
		"project_id": projectId,
		"user_id":    ownerId,
	}

	resp := makeRequest(t, http.MethodPost, baseURL+"/projects/removeMember", reqBody)
	defer resp.Body.Close()

	validateErrorResponse(t, resp, "INVALID_INPUT", http.StatusBadRequest)
}

func TestProject_RemoveMember_UnassignsTasks(t *testing.T) {
	ownerId := registerUser(t, "e2e-proj-unassign-owner@example.com")
	memberId := registerUser(t, "e2e-proj-unassign-member@example.com")
	projectId := createProject(t, "Unassign Project", ownerId)

	addBody := map[string]interface{}{
		"project_id": projectId,
		"user_id":    memberId,
	}
	addResp := makeRequest(t, http.MethodPost, baseURL+"/projects/addMember", addBody)
	addResp.Body.Close()
	require.Equal(t, http.StatusCreated, addResp.StatusCode)

	taskId := createTask(t, projectId, "Assigned work")

	assignBody := map[string]interface{}{
		"task_id":     taskId,
		"assignee_id": memberId,
	}
	assignResp := makeRequest(t, http.MethodPost, baseURL+"/tasks/assign", assignBody)
	assignResp.Body.Close()
	require.Equal(t, http.StatusOK, assignResp.StatusCode)

	removeBody := map[string]interface{}{
		"project_id": projectId,
		"user_id":    memberId,
	}
	removeResp := makeRequest(t, http.MethodPost, baseURL+"/projects/removeMember", removeBody)
	removeResp.Body.Close()
	require.Equal(t, http.StatusOK, removeResp.StatusCode)

	getResp := makeRequest(t, http.MethodGet, baseURL+"/tasks/get?task_id="+taskId, nil)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	result := parseBody(t, getResp)
	task := result["task"].(map[string]interface{})
	assert.Nil(t, task["assignee_id"], "removing a member must clear their task assignments")
}

func TestProject_Update_PartialFields(t *testing.T) {
	ownerId := registerUser(t, "e2e-proj-update@example.com")
	projectId := createProject(t, "Old Title", ownerId)

	reqBody := map[string]interface{}{
		"project_id": projectId,
		"title":      "New Title",
	}

	resp := makeRequest(t, http.MethodPost, baseURL+"/projects/update", reqBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	result := parseBody(t, resp)
	project := result["project"].(map[string]interface{})
	assert.Equal(t, "New Title", project["title"])
	assert.NotEmpty(t, project["color"], "color must survive a partial update")
}

func TestProject_List_ShowsTaskCounts(t *testing.T) {
	ownerId := registerUser(t, "e2e-proj-list@example.com")
	projectId := createProject(t, "Counted Project", ownerId)

	createTask(t, projectId, "First task")
	doneTaskId := createTask(t, projectId, "Second task")

	statusBody := map[string]interface{}{
		"task_id": doneTaskId,
		"status":  "done",
	}
	statusResp := makeRequest(t, http.MethodPost, baseURL+"/tasks/setStatus", statusBody)
	statusResp.Body.Close()
	require.Equal(t, http.StatusOK, statusResp.StatusCode)

	resp := makeRequest(t, http.MethodGet, baseURL+"/projects/list?user_id="+ownerId, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	result := parseBody(t, resp)
	projects := result["projects"].([]interface{})
	require.Len(t, projects, 1)

	summary := projects[0].(map[string]interface{})
	assert.Equal(t, float64(2), summary["task_count"])
	assert.Equal(t, float64(1), summary["completed_task_count"])
}

func TestProject_Delete_CascadesToTasks(t *testing.T) {
	ownerId := registerUser(t, "e2e-proj-delete@example.com")
	projectId := createProject(t, "Doomed Project", ownerId)
	taskId := createTask(t, projectId, "Doomed task")

	deleteBody := map[string]interface{}{
		"project_id": projectId,
	}
	deleteResp := makeRequest(t, http.MethodPost, baseURL+"/projects/delete", deleteBody)
	deleteResp.Body.Close()
	require.Equal(t, http.StatusOK, deleteResp.StatusCode)

	getResp := makeRequest(t, http.MethodGet, baseURL+"/tasks/get?task_id="+taskId, nil)
	defer getResp.Body.Close()

	validateErrorResponse(t, getResp, "NOT_FOUND", http.StatusNotFound)
}
