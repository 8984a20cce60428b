package ghclient_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tbmobb813/ciwatch/pkg/domain/model"
	"github.com/tbmobb813/ciwatch/pkg/domain/types"
	"github.com/tbmobb813/ciwatch/pkg/infra/ghclient"
	"github.com/tbmobb813/ciwatch/pkg/utils/testutil"
)

func testTarget() *model.Target {
	return &model.Target{Owner: "tbmobb813", RepoName: "blurapp", Branch: "comp/implement"}
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *ghclient.Client) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// fixed header set on every request
		gt.V(t, r.Header.Get("Authorization")).Equal("token test-token")
		gt.V(t, r.Header.Get("Accept")).Equal("application/vnd.github+json")
		gt.V(t, r.Header.Get("User-Agent")).Equal("ciwatch")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := gt.R1(ghclient.New("test-token", ghclient.WithBaseURL(srv.URL+"/"))).NoError(t)
	return srv, client
}

func TestNew(t *testing.T) {
	t.Run("empty token is rejected", func(t *testing.T) {
		_, err := ghclient.New("")
		gt.Error(t, err)
	})

	t.Run("invalid base URL is rejected", func(t *testing.T) {
		_, err := ghclient.New("x", ghclient.WithBaseURL("://bad"))
		gt.Error(t, err)
	})
}

func TestListWorkflowRuns(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/repos/tbmobb813/blurapp/actions/runs")
		gt.V(t, r.URL.Query().Get("branch")).Equal("comp/implement")
		gt.V(t, r.URL.Query().Get("per_page")).Equal("10")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"total_count": 3,
			"workflow_runs": [
				{"id": 41, "status": "completed", "conclusion": "success", "created_at": "2024-05-01T10:00:00Z"},
				{"id": 42, "status": "in_progress", "conclusion": "", "created_at": "2024-05-02T10:00:00Z"},
				{"id": 40, "status": "completed", "conclusion": "failure"}
			]
		}`)
	})

	runs := gt.R1(client.ListWorkflowRuns(context.Background(), testTarget(), 10)).NoError(t)
	gt.A(t, runs).Length(3)
	gt.V(t, runs[0].ID).Equal(types.RunID(41))
	gt.V(t, runs[0].CreatedAt).Equal("2024-05-01T10:00:00Z")
	gt.V(t, runs[1].Status).Equal("in_progress")

	// missing created_at maps to the empty string so it sorts last
	gt.V(t, runs[2].CreatedAt).Equal("")

	latest := model.LatestRun(runs)
	gt.V(t, latest.ID).Equal(types.RunID(42))
}

func TestListWorkflowJobs(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/repos/tbmobb813/blurapp/actions/runs/42/jobs")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"total_count": 2,
			"jobs": [
				{"id": 7, "name": "build-test", "status": "completed", "conclusion": "failure"},
				{"id": 8, "name": "deploy", "status": "queued", "conclusion": ""}
			]
		}`)
	})

	jobs := gt.R1(client.ListWorkflowJobs(context.Background(), testTarget(), 42)).NoError(t)
	gt.A(t, jobs).Length(2)
	gt.V(t, jobs[0].ID).Equal(types.JobID(7))
	gt.V(t, jobs[0].Status).Equal(types.JobStatusCompleted)
	gt.V(t, jobs[1].Name).Equal("deploy")
}

func TestGetLogsURL(t *testing.T) {
	t.Run("resolves the redirect location", func(t *testing.T) {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/repos/tbmobb813/blurapp/actions/runs/42/logs")
			w.Header().Set("Location", "https://blobs.example.com/run-42.zip")
			w.WriteHeader(http.StatusFound)
		})

		logsURL := gt.R1(client.GetLogsURL(context.Background(), testTarget(), 42)).NoError(t)
		gt.V(t, logsURL.String()).Equal("https://blobs.example.com/run-42.zip")
	})

	t.Run("non-redirect response is an error", func(t *testing.T) {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetLogsURL(context.Background(), testTarget(), 42)
		gt.Error(t, err)
	})
}

func TestClientAgainstGitHub(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")
	owner := testutil.GetEnvOrSkip(t, "TEST_GITHUB_OWNER")
	repo := testutil.GetEnvOrSkip(t, "TEST_GITHUB_REPO")
	branch := testutil.GetEnvOrSkip(t, "TEST_GITHUB_BRANCH")

	client := gt.R1(ghclient.New(types.GitHubToken(token))).NoError(t)
	target := &model.Target{Owner: owner, RepoName: repo, Branch: types.BranchName(branch)}

	runs := gt.R1(client.ListWorkflowRuns(context.Background(), target, 10)).NoError(t)
	if len(runs) > 0 {
		gt.R1(client.ListWorkflowJobs(context.Background(), target, runs[0].ID)).NoError(t)
	}
}
