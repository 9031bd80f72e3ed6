//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "groomer-directory-api"
	ConsumerName = "directory-web"

	StateDirectorySeeded = "directory seeded with generated listings"
	StateListingExists   = "listing happy-paws-pact-grooming-austin exists"
	StateListingMissing  = "no listing with slug ghost-groomer"
	StateLeadSinkUp      = "lead sink accepting leads"
)

const (
	ExistingSlug      = "happy-paws-pact-grooming-austin"
	ExistingListingID = int64(90001)
	MissingSlug       = "ghost-groomer"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the directory web consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleLeadPayload provides stable test data for the contact form interaction.
func ExampleLeadPayload() map[string]any {
	return map[string]any{
		"listingId": ExistingListingID,
		"name":      "Pact Prospect",
		"email":     "prospect@example.com",
		"petType":   "Dog",
		"message":   "Golden retriever, due for a full groom.",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
