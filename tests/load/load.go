package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	baseURL      = "http://localhost:8080"
	targetRPS    = 5
	testDuration = 2 * time.Minute
)

var rng *rand.Rand

type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type CreateProjectRequest struct {
	Title   string `json:"title"`
	OwnerID string `json:"owner_id"`
}

type CreateTaskRequest struct {
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
}

type SetStatusRequest struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run load.go <scenario>")
		fmt.Println("Scenarios: health, users, projects, tasks, stats, all")
		os.Exit(1)
	}

	scenario := os.Args[1]
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))

	var metrics vegeta.Metrics
	var err error

	switch scenario {
	case "health":
		metrics, err = testHealth()
	case "users":
		metrics, err = testUsers()
	case "projects":
		metrics, err = testProjects()
	case "tasks":
		metrics, err = testTasks()
	case "stats":
		metrics, err = testStats()
	case "all":
		metrics, err = testAll()
	default:
		fmt.Printf("Unknown scenario: %s\n", scenario)
		os.Exit(1)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	printMetrics(metrics)
}

func testHealth() (vegeta.Metrics, error) {
	targeter := vegeta.NewStaticTargeter(vegeta.Target{
		Method: "GET",
		URL:    baseURL + "/health",
	})

	return runAttack(targeter, "Health Check")
}

func testUsers() (vegeta.Metrics, error) {
	userID, err := registerLoadUser()
	if err != nil {
		return vegeta.Metrics{}, err
	}

	targeter := vegeta.NewStaticTargeter(
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/users/get?user_id=" + userID,
		},
		vegeta.Target{
			Method: "POST",
			URL:    baseURL + "/users/touch",
			Body:   mustJSON(map[string]string{"user_id": userID}),
			Header: http.Header{
				"Content-Type": []string{"application/json"},
			},
		},
	)

	return runAttack(targeter, "User Operations")
}

func testProjects() (vegeta.Metrics, error) {
	userID, err := registerLoadUser()
	if err != nil {
		return vegeta.Metrics{}, err
	}
	projectID, err := createLoadProject(userID)
	if err != nil {
		return vegeta.Metrics{}, err
	}

	targeter := vegeta.NewStaticTargeter(
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/projects/get?project_id=" + projectID,
		},
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/projects/list?user_id=" + userID,
		},
	)

	return runAttack(targeter, "Project Operations")
}

func testTasks() (vegeta.Metrics, error) {
	userID, err := registerLoadUser()
	if err != nil {
		return vegeta.Metrics{}, err
	}
	projectID, err := createLoadProject(userID)
	if err != nil {
		return vegeta.Metrics{}, err
	}

	targeter := vegeta.NewStaticTargeter(
		vegeta.Target{
			Method: "POST",
			URL:    baseURL + "/tasks/create",
			Body:   createTaskBody(projectID),
			Header: http.Header{
				"Content-Type": []string{"application/json"},
			},
		},
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/tasks/list?project_id=" + projectID,
		},
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/tasks/list?project_id=" + projectID + "&status=todo",
		},
	)

	return runAttack(targeter, "Task Operations")
}

func testStats() (vegeta.Metrics, error) {
	targeter := vegeta.NewStaticTargeter(vegeta.Target{
		Method: "GET",
		URL:    baseURL + "/stats",
	})

	return runAttack(targeter, "Dashboard Stats")
}

func testAll() (vegeta.Metrics, error) {
	userID, err := registerLoadUser()
	if err != nil {
		return vegeta.Metrics{}, err
	}
	projectID, err := createLoadProject(userID)
	if err != nil {
		return vegeta.Metrics{}, err
	}

	targeter := vegeta.NewStaticTargeter(
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/health",
		},
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/users/get?user_id=" + userID,
		},
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/projects/get?project_id=" + projectID,
		},
		vegeta.Target{
			Method: "POST",
			URL:    baseURL + "/tasks/create",
			Body:   createTaskBody(projectID),
			Header: http.Header{
				"Content-Type": []string{"application/json"},
			},
		},
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/tasks/list?project_id=" + projectID,
		},
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/stats",
		},
	)

	return runAttack(targeter, "All Endpoints")
}

func runAttack(targeter vegeta.Targeter, name string) (vegeta.Metrics, error) {
	rate := vegeta.Rate{Freq: targetRPS, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, testDuration, name) {
		metrics.Add(res)
	}
	metrics.Close()

	return metrics, nil
}

// registerLoadUser creates a user over plain HTTP before the attack starts.
// Ids are server-generated, so targets need a real one.
func registerLoadUser() (string, error) {
	req := RegisterRequest{
		FirstName:       "Load",
		LastName:        "User",
		Email:           fmt.Sprintf("load_%d@example.com", rng.Intn(1000000)),
		Password:        "L0adTestPass",
		ConfirmPassword: "L0adTestPass",
	}
	body, _ := json.Marshal(req)

	resp, err := http.Post(baseURL+"/users/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("register load user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("register load user: unexpected status %d", resp.StatusCode)
	}

	var result struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("register load user: %w", err)
	}
	return result.User.ID, nil
}

func createLoadProject(ownerID string) (string, error) {
	req := CreateProjectRequest{
		Title:   fmt.Sprintf("load_project_%d", rng.Intn(1000000)),
		OwnerID: ownerID,
	}
	body, _ := json.Marshal(req)

	resp, err := http.Post(baseURL+"/projects/create", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create load project: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("create load project: unexpected status %d", resp.StatusCode)
	}

	var result struct {
		Project struct {
			ID string `json:"id"`
		} `json:"project"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("create load project: %w", err)
	}
	return result.Project.ID, nil
}

func createTaskBody(projectID string) []byte {
	req := CreateTaskRequest{
		ProjectID: projectID,
		Title:     fmt.Sprintf("load_task_%d", rng.Intn(1000000)),
		Priority:  "medium",
	}
	return mustJSON(req)
}

func mustJSON(v interface{}) []byte {
	body, _ := json.Marshal(v)
	return body
}

func printMetrics(metrics vegeta.Metrics) {
	fmt.Printf("\n=== Load Test Results ===\n\n")
	fmt.Printf("Requests Total:     %d\n", metrics.Requests)
	fmt.Printf("Success Rate:       %.2f%%\n", metrics.Success*100)
	fmt.Printf("Duration:           %v\n", metrics.Duration)

	if metrics.Requests > 0 {
		fmt.Printf("\nLatency:\n")
		fmt.Printf("  Mean:             %v\n", metrics.Latencies.Mean)
		fmt.Printf("  P50:              %v\n", metrics.Latencies.P50)
		fmt.Printf("  P95:              %v\n", metrics.Latencies.P95)
		fmt.Printf("  P99:              %v\n", metrics.Latencies.P99)
		fmt.Printf("  Max:              %v\n", metrics.Latencies.Max)

		fmt.Printf("\nThroughput:\n")
		fmt.Printf("  Requests/sec:     %.2f\n", metrics.Rate)

		fmt.Printf("\nStatus Codes:\n")
		for code, count := range metrics.StatusCodes {
			fmt.Printf("  %s: %d\n", code, count)
		}

		fmt.Printf("\nErrors:\n")
		if len(metrics.Errors) > 0 {
			for _, err := range metrics.Errors {
				fmt.Printf("  %s\n", err)
			}
		} else {
			fmt.Printf("  None\n")
		}

		fmt.Printf("\nSLI Compliance:\n")
		p95ms := metrics.Latencies.P95.Seconds() * 1000
		successRate := metrics.Success * 100
		fmt.Printf("  P95 Latency:      %.2f ms (target: < 300ms) - %s\n",
			p95ms,
			checkStatus(p95ms < 300, "PASS", "FAIL"))
		fmt.Printf("  Success Rate:     %.2f%% (target: > 99.9%%) - %s\n",
			successRate,
			checkStatus(successRate >= 99.9, "PASS", "FAIL"))
	}
	fmt.Printf("\n")
}

func checkStatus(condition bool, pass, fail string) string {
	if condition {
		return pass
	}
	return fail
}
