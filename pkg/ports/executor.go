package ports

import (
	"context"
	"fmt"
	"path"
	"time"
)

// Artifact is one output file recorded by a completed job.
type Artifact struct {
	Filename  string
	Subfolder string
	Kind      string
}

// Result is the terminal record of one completed job.
type Result struct {
	JobID     string
	Artifacts []Artifact

	// Started and Finished bound the job's execution as reported by the
	// executor; zero values mean the executor did not report timing.
	Started  time.Time
	Finished time.Time
}

// LastArtifactPath returns the subfolder-relative path of the final
// recorded artifact, or "" when the job recorded none.
func (r *Result) LastArtifactPath() string {
	if r == nil || len(r.Artifacts) == 0 {
		return ""
	}
	last := r.Artifacts[len(r.Artifacts)-1]
	if last.Filename == "" {
		return ""
	}
	if last.Subfolder != "" {
		return path.Join(last.Subfolder, last.Filename)
	}
	return last.Filename
}

// Elapsed is a wall-clock breakdown of one completed job.
type Elapsed struct {
	Hours   int
	Minutes int
	Seconds float64
	// Total is the full duration in seconds.
	Total float64
}

func (e Elapsed) String() string {
	return fmt.Sprintf("%dh %dm %.1fs", e.Hours, e.Minutes, e.Seconds)
}

// ExecutionClient submits job templates to a remote executor, one at a
// time. Failures are terminal for the sweep: no retry policy is applied
// at this layer or above it.
type ExecutionClient interface {
	// Submit queues the template and returns the executor's job ID.
	Submit(ctx context.Context, tpl Template) (string, error)

	// Await blocks until the job reaches a terminal state and returns
	// its result record.
	Await(ctx context.Context, jobID string) (*Result, error)

	// ElapsedTime computes the wall-clock breakdown of a completed job
	// from its result record.
	ElapsedTime(res *Result) Elapsed
}
