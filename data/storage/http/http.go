package http

import (
	"context"
	"encoding/json"
	"fmt"

	http_request "github.com/xhd2015/go-http-request"
	"github.com/xhd2015/studentlib/data/storage"
	"github.com/xhd2015/studentlib/models"
)

// ServerResponse wraps all server responses
type ServerResponse struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type Client struct {
	serverAddr      string
	serverAuthToken string
}

func NewClient(serverAddr string, serverAuthToken string) *Client {
	return &Client{
		serverAddr:      serverAddr,
		serverAuthToken: serverAuthToken,
	}
}

// makeRequest posts reqData as JSON and unwraps the server response into respData
func (c *Client) makeRequest(ctx context.Context, url string, reqData any, respData any) error {
	req := http_request.New()
	if c.serverAuthToken != "" {
		req = req.Header("Authorization", "Bearer "+c.serverAuthToken)
	}

	var serverResp ServerResponse
	err := req.PostJSON(ctx, c.serverAddr+url, reqData, &serverResp)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if serverResp.Code != 0 {
		return fmt.Errorf("server error (code %d): %s", serverResp.Code, serverResp.Msg)
	}

	if respData != nil && len(serverResp.Data) > 0 {
		err = json.Unmarshal(serverResp.Data, respData)
		if err != nil {
			return fmt.Errorf("failed to unmarshal response data: %w", err)
		}
	}

	return nil
}

// LibraryHttpService implements storage.LibraryService against a studentlib server
type LibraryHttpService struct {
	client *Client
}

var _ storage.LibraryService = (*LibraryHttpService)(nil)
var _ storage.LibraryOperations = (*LibraryHttpService)(nil)

func NewLibraryService(client *Client) *LibraryHttpService {
	return &LibraryHttpService{client: client}
}

func (s *LibraryHttpService) Load(ctx context.Context) (*models.Library, error) {
	var response struct {
		Library *models.Library `json:"library"`
	}
	err := s.client.makeRequest(ctx, "/library/load", struct{}{}, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}
	if response.Library == nil {
		return nil, fmt.Errorf("failed to load library: empty response")
	}
	return response.Library, nil
}

func (s *LibraryHttpService) Save(ctx context.Context, lib *models.Library) error {
	params := struct {
		Library *models.Library `json:"library"`
	}{Library: lib}

	err := s.client.makeRequest(ctx, "/library/save", params, nil)
	if err != nil {
		return fmt.Errorf("failed to save library: %w", err)
	}
	return nil
}

func (s *LibraryHttpService) Close() error {
	return nil
}

func (s *LibraryHttpService) Vote(ctx context.Context, list models.ThreadList, id int64, delta int64) (models.ForumThread, error) {
	params := struct {
		List  models.ThreadList `json:"list"`
		ID    int64             `json:"id"`
		Delta int64             `json:"delta"`
	}{List: list, ID: id, Delta: delta}

	var response struct {
		Thread models.ForumThread `json:"thread"`
	}
	err := s.client.makeRequest(ctx, "/threads/vote", params, &response)
	if err != nil {
		return models.ForumThread{}, fmt.Errorf("failed to vote: %w", err)
	}
	return response.Thread, nil
}

func (s *LibraryHttpService) ToggleScheduleTask(ctx context.Context, id int64) (models.ScheduleTask, error) {
	params := struct {
		ID int64 `json:"id"`
	}{ID: id}

	var response struct {
		Task models.ScheduleTask `json:"task"`
	}
	err := s.client.makeRequest(ctx, "/schedule/toggle", params, &response)
	if err != nil {
		return models.ScheduleTask{}, fmt.Errorf("failed to toggle schedule task: %w", err)
	}
	return response.Task, nil
}

func (s *LibraryHttpService) TogglePlanTask(ctx context.Context, planID int64, taskID int64) (models.StudyPlan, error) {
	params := struct {
		PlanID int64 `json:"plan_id"`
		TaskID int64 `json:"task_id"`
	}{PlanID: planID, TaskID: taskID}

	var response struct {
		Plan models.StudyPlan `json:"plan"`
	}
	err := s.client.makeRequest(ctx, "/plans/toggle_task", params, &response)
	if err != nil {
		return models.StudyPlan{}, fmt.Errorf("failed to toggle task: %w", err)
	}
	return response.Plan, nil
}

func (s *LibraryHttpService) CreateThread(ctx context.Context, payload models.ThreadPayload) (models.ForumThread, error) {
	var response struct {
		Thread models.ForumThread `json:"thread"`
	}
	err := s.client.makeRequest(ctx, "/threads/create", payload, &response)
	if err != nil {
		return models.ForumThread{}, fmt.Errorf("failed to create thread: %w", err)
	}
	return response.Thread, nil
}

func (s *LibraryHttpService) CreatePlan(ctx context.Context, payload models.PlanPayload) (models.StudyPlan, error) {
	var response struct {
		Plan models.StudyPlan `json:"plan"`
	}
	err := s.client.makeRequest(ctx, "/plans/create", payload, &response)
	if err != nil {
		return models.StudyPlan{}, fmt.Errorf("failed to create plan: %w", err)
	}
	return response.Plan, nil
}

func (s *LibraryHttpService) AddTask(ctx context.Context, planID int64, payload models.TaskPayload) (models.StudyPlan, error) {
	params := struct {
		PlanID int64              `json:"plan_id"`
		Task   models.TaskPayload `json:"task"`
	}{PlanID: planID, Task: payload}

	var response struct {
		Plan models.StudyPlan `json:"plan"`
	}
	err := s.client.makeRequest(ctx, "/plans/add_task", params, &response)
	if err != nil {
		return models.StudyPlan{}, fmt.Errorf("failed to add task: %w", err)
	}
	return response.Plan, nil
}
