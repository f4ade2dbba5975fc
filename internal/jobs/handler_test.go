package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func testRouter(delay time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(delay).RegisterRoutes(r.Group("/api"))
	return r
}

func TestRecommendedReturnsCatalog(t *testing.T) {
	r := testRouter(time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/recommended", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got []Job
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(got))
	}

	wantScores := []int{95, 92, 88}
	for i, job := range got {
		if job.MatchScore != wantScores[i] {
			t.Fatalf("job %d: expected matchScore %d, got %d", i, wantScores[i], job.MatchScore)
		}
		if job.ID != i+1 {
			t.Fatalf("job %d: expected id %d, got %d", i, i+1, job.ID)
		}
		if job.Title == "" || job.Company == "" || len(job.Skills) == 0 {
			t.Fatalf("job %d missing fields: %+v", i, job)
		}
	}
}

func TestRecommendedWaitsForConfiguredDelay(t *testing.T) {
	delay := 50 * time.Millisecond
	r := testRouter(delay)

	start := time.Now()
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/recommended", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if elapsed := time.Since(start); elapsed < delay {
		t.Fatalf("handler returned after %v, before the %v delay", elapsed, delay)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRecommendedAbortsOnCancelledRequest(t *testing.T) {
	r := testRouter(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/recommended", nil).WithContext(ctx)
	cancel()

	start := time.Now()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if elapsed := time.Since(start); elapsed >= time.Second {
		t.Fatalf("cancelled request still waited the full delay (%v)", elapsed)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("cancelled request should not write a catalog, got %q", w.Body.String())
	}
}
