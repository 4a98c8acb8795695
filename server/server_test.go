package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/xhd2015/studentlib/data"
	"github.com/xhd2015/studentlib/data/seed"
	httpstore "github.com/xhd2015/studentlib/data/storage/http"
	"github.com/xhd2015/studentlib/data/storage/memory"
	"github.com/xhd2015/studentlib/data/transform"
	"github.com/xhd2015/studentlib/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(t *testing.T, token string) (*gin.Engine, *data.LibraryManager) {
	t.Helper()
	m := data.NewLibraryManager(memory.New(), transform.NewCounter(1000))
	if err := m.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	return New(m, Options{Token: token}), m
}

type rawResponse struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func post(t *testing.T, engine *gin.Engine, path string, body any, header map[string]string) (int, rawResponse) {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp rawResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %s response %q: %v", path, w.Body.String(), err)
	}
	return w.Code, resp
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode data %s: %v", raw, err)
	}
	return v
}

func TestVoteThread(t *testing.T) {
	engine, _ := newTestEngine(t, "")

	status, resp := post(t, engine, "/threads/vote", VoteRequest{List: models.ThreadList_Recent, ID: 2, Delta: -1}, nil)
	if status != http.StatusOK || resp.Code != 0 {
		t.Fatalf("expected success, got %d %+v", status, resp)
	}
	got := decode[struct{ Thread models.ForumThread }](t, resp.Data)
	if got.Thread.Votes != 23 {
		t.Errorf("expected 23 votes, got %d", got.Thread.Votes)
	}

	status, resp = post(t, engine, "/threads/vote", VoteRequest{List: models.ThreadList_Recent, ID: 99, Delta: 1}, nil)
	if status != http.StatusNotFound || resp.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown thread, got %d %+v", status, resp)
	}

	status, _ = post(t, engine, "/threads/vote", VoteRequest{List: models.ThreadList_Recent, ID: 2, Delta: 5}, nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for delta 5, got %d", status)
	}

	status, _ = post(t, engine, "/threads/vote", VoteRequest{List: "hot", ID: 2, Delta: 1}, nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown list, got %d", status)
	}
}

func TestCreateThreadValidates(t *testing.T) {
	engine, m := newTestEngine(t, "")

	status, resp := post(t, engine, "/threads/create", models.ThreadPayload{Title: "Hi", Category: "Mathematics", Content: "short"}, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d %+v", status, resp)
	}
	wantMsg := "invalid input: title: must be at least 3 characters; content: must be at least 10 characters"
	if resp.Msg != wantMsg {
		t.Errorf("expected msg %q, got %q", wantMsg, resp.Msg)
	}

	status, resp = post(t, engine, "/plans/add_task", AddTaskRequest{PlanID: 1, Task: models.TaskPayload{Title: "Revise", Duration: "1 hour", Priority: "urgent"}}, nil)
	if status != http.StatusBadRequest || resp.Msg != "invalid input: priority: must be one of high, medium, low" {
		t.Errorf("expected nested priority error, got %d %q", status, resp.Msg)
	}

	status, resp = post(t, engine, "/threads/create", models.ThreadPayload{
		Title:    "Linear algebra study group",
		Category: "Mathematics",
		Content:  "Anyone up for weekly sessions?",
	}, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, resp)
	}
	got := decode[struct{ Thread models.ForumThread }](t, resp.Data)
	want := models.ForumThread{
		ID:         1001,
		Title:      "Linear algebra study group",
		Author:     transform.CurrentUser,
		Category:   "Mathematics",
		Views:      1,
		DatePosted: transform.JustNow,
		LastReply:  transform.JustNow,
	}
	if diff := cmp.Diff(want, got.Thread); diff != "" {
		t.Errorf("thread mismatch (-want +got):\n%s", diff)
	}
	if recent := m.Threads(models.ThreadList_Recent, ""); recent[0].ID != 1001 {
		t.Errorf("expected new thread at the front, got %d", recent[0].ID)
	}
}

func TestPlanEndpoints(t *testing.T) {
	engine, _ := newTestEngine(t, "")

	status, resp := post(t, engine, "/plans/toggle_task", TogglePlanTaskRequest{PlanID: 2, TaskID: 203}, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, resp)
	}
	plan := decode[struct{ Plan models.StudyPlan }](t, resp.Data).Plan
	if plan.Progress != 60 {
		t.Errorf("expected 60, got %d", plan.Progress)
	}

	status, _ = post(t, engine, "/plans/toggle_task", TogglePlanTaskRequest{PlanID: 2, TaskID: 101}, nil)
	if status != http.StatusNotFound {
		t.Errorf("expected 404 for task of another plan, got %d", status)
	}

	status, resp = post(t, engine, "/plans/add_task", AddTaskRequest{PlanID: 2, Task: models.TaskPayload{Title: "Benchmark", Duration: "1 hour", Priority: models.Priority_Low}}, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, resp)
	}
	plan = decode[struct{ Plan models.StudyPlan }](t, resp.Data).Plan
	if len(plan.Tasks) != 6 || plan.Progress != 50 {
		t.Errorf("expected 6 tasks at 50%%, got %d at %d%%", len(plan.Tasks), plan.Progress)
	}

	status, _ = post(t, engine, "/plans/add_task", AddTaskRequest{PlanID: 2, Task: models.TaskPayload{Title: "Benchmark", Duration: "1 hour", Priority: "urgent"}}, nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid priority, got %d", status)
	}

	status, resp = post(t, engine, "/plans/list", PlanListRequest{Status: "completed"}, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if plans := decode[struct{ Plans []models.StudyPlan }](t, resp.Data).Plans; len(plans) != 0 {
		t.Errorf("expected no completed plans, got %d", len(plans))
	}
}

func TestScheduleEndpoints(t *testing.T) {
	engine, _ := newTestEngine(t, "")

	status, resp := post(t, engine, "/schedule/toggle", ToggleRequest{ID: 301}, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, resp)
	}
	_, resp = post(t, engine, "/schedule/list", struct{}{}, nil)
	got := decode[struct {
		Schedule       []models.ScheduleTask `json:"schedule"`
		RemainingHours int                   `json:"remaining_hours"`
	}](t, resp.Data)
	if got.RemainingHours != 4 || !got.Schedule[2].Completed {
		t.Errorf("expected 4 hours remaining with task 301 done, got %+v", got)
	}
}

func TestDashboardAndProfileEndpoints(t *testing.T) {
	engine, _ := newTestEngine(t, "")

	status, resp := post(t, engine, "/dashboard/get", struct{}{}, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, resp)
	}
	dashboard := decode[struct {
		Stats          []models.Stat     `json:"stats"`
		RecentlyViewed []models.Resource `json:"recently_viewed"`
		Recommended    []models.Resource `json:"recommended"`
		Reminders      []models.Reminder `json:"reminders"`
	}](t, resp.Data)
	if len(dashboard.Stats) != 3 || dashboard.Stats[0].Value != "16.5 hrs" {
		t.Errorf("expected study time 16.5 hrs, got %+v", dashboard.Stats)
	}
	if len(dashboard.RecentlyViewed) != 3 || len(dashboard.Recommended) != 3 || dashboard.Recommended[0].ID != 4 {
		t.Errorf("expected 3 viewed and 3 recommended starting at 4, got %+v %+v", dashboard.RecentlyViewed, dashboard.Recommended)
	}
	if len(dashboard.Reminders) != 3 {
		t.Errorf("expected 3 reminders, got %d", len(dashboard.Reminders))
	}

	status, resp = post(t, engine, "/profile/get", struct{}{}, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, resp)
	}
	profile := decode[struct {
		Profile   models.Profile    `json:"profile"`
		Favorites []models.Resource `json:"favorites"`
	}](t, resp.Data)
	if profile.Profile.Username != "alex_j" || len(profile.Profile.Uploads) != 2 {
		t.Errorf("expected alex_j with 2 uploads, got %+v", profile.Profile)
	}
	if len(profile.Favorites) != 3 || profile.Favorites[2].ID != 8 {
		t.Errorf("expected favorites ending with 8, got %+v", profile.Favorites)
	}
}

func TestSearchEndpoints(t *testing.T) {
	engine, _ := newTestEngine(t, "")

	_, resp := post(t, engine, "/resources/list", ResourceListRequest{Query: "computer", Type: models.ResourceType_Video}, nil)
	resources := decode[struct{ Resources []models.Resource }](t, resp.Data).Resources
	if len(resources) != 1 || resources[0].ID != 8 {
		t.Errorf("expected resource 8 only, got %+v", resources)
	}

	_, resp = post(t, engine, "/topics/list", ListRequest{Query: "PROGRAMMING"}, nil)
	topics := decode[struct{ Topics []models.ForumTopic }](t, resp.Data).Topics
	if len(topics) != 1 || topics[0].ID != 2 {
		t.Errorf("expected topic 2 only, got %+v", topics)
	}
}

func TestBearerAuth(t *testing.T) {
	engine, _ := newTestEngine(t, "secret")

	status, resp := post(t, engine, "/topics/list", ListRequest{}, nil)
	if status != http.StatusUnauthorized || resp.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d %+v", status, resp)
	}
	status, _ = post(t, engine, "/topics/list", ListRequest{}, map[string]string{"Authorization": "Bearer wrong"})
	if status != http.StatusUnauthorized {
		t.Errorf("expected 401 with wrong token, got %d", status)
	}
	status, _ = post(t, engine, "/topics/list", ListRequest{}, map[string]string{"Authorization": "Bearer secret"})
	if status != http.StatusOK {
		t.Errorf("expected 200 with token, got %d", status)
	}
}

func TestRequestIDHeader(t *testing.T) {
	engine, _ := newTestEngine(t, "")

	req := httptest.NewRequest(http.MethodPost, "/topics/list", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) == "" {
		t.Errorf("expected a generated request id")
	}

	req = httptest.NewRequest(http.MethodPost, "/topics/list", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc" {
		t.Errorf("expected request id abc, got %q", got)
	}
}

func TestHttpStorageRoundTrip(t *testing.T) {
	engine, _ := newTestEngine(t, "secret")
	ts := httptest.NewServer(engine)
	defer ts.Close()

	ctx := context.Background()
	svc := httpstore.NewLibraryService(httpstore.NewClient(ts.URL, "secret"))
	lib, err := svc.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(seed.Library(), lib); diff != "" {
		t.Fatalf("loaded library differs from seed (-want +got):\n%s", diff)
	}

	// a manager on the client side persists through the server
	remote := data.NewLibraryManager(svc, nil)
	if err := remote.Init(ctx); err != nil {
		t.Fatal(err)
	}
	if _, found, err := remote.Vote(ctx, models.ThreadList_Popular, 6, transform.VoteDown); err != nil || !found {
		t.Fatalf("remote vote: found=%v err=%v", found, err)
	}

	lib, err = svc.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if lib.PopularThreads[1].Votes != 75 {
		t.Errorf("expected 75 votes after remote save, got %d", lib.PopularThreads[1].Votes)
	}
}

func newRemoteManager(t *testing.T, url string) *data.LibraryManager {
	t.Helper()
	m := data.NewLibraryManager(httpstore.NewLibraryService(httpstore.NewClient(url, "")), nil)
	if err := m.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestHttpStorageTwoClientsKeepBothChanges(t *testing.T) {
	engine, server := newTestEngine(t, "")
	ts := httptest.NewServer(engine)
	defer ts.Close()

	ctx := context.Background()
	a := newRemoteManager(t, ts.URL)
	b := newRemoteManager(t, ts.URL)

	if _, _, err := a.Vote(ctx, models.ThreadList_Popular, 5, transform.VoteUp); err != nil {
		t.Fatal(err)
	}
	if _, _, err := b.Vote(ctx, models.ThreadList_Recent, 1, transform.VoteUp); err != nil {
		t.Fatal(err)
	}

	lib := server.Library()
	if lib.PopularThreads[0].Votes != 88 {
		t.Errorf("expected popular thread 5 at 88 votes, got %d", lib.PopularThreads[0].Votes)
	}
	if lib.RecentThreads[0].Votes != 13 {
		t.Errorf("expected recent thread 1 at 13 votes, got %d", lib.RecentThreads[0].Votes)
	}
	// b reloaded after its own vote and sees a's
	if got := b.Threads(models.ThreadList_Popular, "")[0].Votes; got != 88 {
		t.Errorf("expected client b to see 88 votes, got %d", got)
	}

	payload := models.ThreadPayload{Title: "Shared thread", Category: "Mathematics", Content: "posted from two clients"}
	ta, err := a.CreateThread(ctx, payload)
	if err != nil {
		t.Fatal(err)
	}
	tb, err := b.CreateThread(ctx, payload)
	if err != nil {
		t.Fatal(err)
	}
	if ta.ID != 1001 || tb.ID != 1002 {
		t.Errorf("expected server assigned ids 1001 and 1002, got %d and %d", ta.ID, tb.ID)
	}
	if got := len(server.Threads(models.ThreadList_Recent, "")); got != 6 {
		t.Errorf("expected 6 recent threads on the server, got %d", got)
	}

	_, found, err := a.Vote(ctx, models.ThreadList_Recent, 999, transform.VoteUp)
	if err != nil || found {
		t.Errorf("expected unknown thread to be a no-op, found=%v err=%v", found, err)
	}

	plan, found, err := b.AddTask(ctx, 3, models.TaskPayload{Title: "Proofread", Duration: "1 hour", Priority: models.Priority_Low})
	if err != nil || !found {
		t.Fatalf("add task: found=%v err=%v", found, err)
	}
	if plan.Progress != 29 {
		t.Errorf("expected progress 29 with 7 tasks, got %d", plan.Progress)
	}
}

func TestSaveLibraryRecomputesProgress(t *testing.T) {
	engine, m := newTestEngine(t, "")

	lib := seed.Library()
	lib.Plans[0].Progress = 99
	lib.RecentThreads = append([]models.ForumThread{{ID: 1001, Title: "Imported", Category: "Mathematics"}}, lib.RecentThreads...)
	status, resp := post(t, engine, "/library/save", LibraryBody{Library: lib}, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, resp)
	}
	if got := m.Plans("")[0].Progress; got != 40 {
		t.Errorf("expected stored progress 40, got %d", got)
	}

	status, resp = post(t, engine, "/threads/create", models.ThreadPayload{Title: "After save", Category: "Mathematics", Content: "a thread after save"}, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, resp)
	}
	got := decode[struct{ Thread models.ForumThread }](t, resp.Data)
	if got.Thread.ID != 1002 {
		t.Errorf("expected id 1002, got %d", got.Thread.ID)
	}
}
