package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labforge-dev/labforge/internal/branding"
	"github.com/labforge-dev/labforge/internal/layout"
)

// pointTemplatesAway makes the README template resource unavailable so tests
// exercise the deterministic fallback.
func pointTemplatesAway(t *testing.T) {
	t.Helper()
	t.Setenv(branding.EnvVar("TEMPLATES"), filepath.Join(t.TempDir(), "nope"))
}

func TestCreate_PopulatesSkeleton(t *testing.T) {
	pointTemplatesAway(t)
	base := t.TempDir()

	summary, err := Create(Request{Name: "proteomics-2024", BasePath: base})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	root := filepath.Join(base, "proteomics-2024")
	absRoot, err := filepath.Abs(root)
	if err != nil {
		t.Fatalf("resolving root: %v", err)
	}
	if summary.Root != absRoot {
		t.Errorf("summary.Root = %q, want %q", summary.Root, absRoot)
	}

	for _, d := range layout.Dirs {
		assertDirExists(t, filepath.Join(root, d))
	}
	for _, f := range layout.Files {
		assertEmptyFile(t, filepath.Join(root, f))
	}

	readme := readFile(t, filepath.Join(root, "README.md"))
	if !strings.Contains(readme, "# proteomics-2024") {
		t.Error("README is missing the project title")
	}
	if !strings.Contains(readme, layout.Tree("proteomics-2024")) {
		t.Error("README is missing the canonical tree text")
	}
}

func TestCreate_Summary(t *testing.T) {
	pointTemplatesAway(t)
	base := t.TempDir()

	summary, err := Create(Request{Name: "x", BasePath: base})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if summary.DirCount != len(layout.Dirs) {
		t.Errorf("DirCount = %d, want %d", summary.DirCount, len(layout.Dirs))
	}
	if summary.FileCount != len(layout.Files)+1 {
		t.Errorf("FileCount = %d, want %d", summary.FileCount, len(layout.Files)+1)
	}
	if len(summary.NextSteps) == 0 || summary.NextSteps[0] != "cd "+summary.Root {
		t.Errorf("NextSteps[0] should be a cd to the absolute root, got %v", summary.NextSteps)
	}
}

func TestCreate_RejectsExistingDirectory(t *testing.T) {
	pointTemplatesAway(t)
	base := t.TempDir()
	root := filepath.Join(base, "taken")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatal(err)
	}
	sentinel := filepath.Join(root, "keep.txt")
	if err := os.WriteFile(sentinel, []byte("precious"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Create(Request{Name: "taken", BasePath: base})
	var exists *AlreadyExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("Create = %v, want AlreadyExistsError", err)
	}

	// The existing directory must be untouched.
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "keep.txt" {
		t.Errorf("existing directory was modified: %v", entries)
	}
	if got := readFile(t, sentinel); got != "precious" {
		t.Errorf("sentinel content changed to %q", got)
	}
}

func TestCreate_RejectsFileConflict(t *testing.T) {
	pointTemplatesAway(t)
	base := t.TempDir()
	root := filepath.Join(base, "occupied")
	if err := os.WriteFile(root, []byte("a plain file"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Create(Request{Name: "occupied", BasePath: base})
	var conflict *PathConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Create = %v, want PathConflictError", err)
	}
	if conflict.Path != root {
		t.Errorf("conflict path = %q, want %q", conflict.Path, root)
	}
	if got := readFile(t, root); got != "a plain file" {
		t.Errorf("conflicting file content changed to %q", got)
	}
}

func TestPlan_PrintsTreeWithoutWriting(t *testing.T) {
	base := t.TempDir()

	tree, err := Plan(Request{Name: "dry", BasePath: base, DryRun: true})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if tree != layout.Tree("dry") {
		t.Error("Plan output differs from the canonical tree")
	}

	if _, err := os.Stat(filepath.Join(base, "dry")); !os.IsNotExist(err) {
		t.Error("Plan created the project root")
	}
}

func TestPlan_GuardStillApplies(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "x"), 0755); err != nil {
		t.Fatal(err)
	}

	_, err := Plan(Request{Name: "x", BasePath: base, DryRun: true})
	var exists *AlreadyExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("Plan = %v, want AlreadyExistsError", err)
	}
}

func TestCreateDirs_Idempotent(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")

	if err := CreateDirs(root); err != nil {
		t.Fatalf("first CreateDirs failed: %v", err)
	}
	// Second run must treat existing directories as success.
	if err := CreateDirs(root); err != nil {
		t.Fatalf("second CreateDirs failed: %v", err)
	}
}

func TestCreateDirs_ComponentConflict(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatal(err)
	}
	// A plain file where the skeleton wants a directory.
	if err := os.WriteFile(filepath.Join(root, "metadata"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	err := CreateDirs(root)
	var conflict *PathConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("CreateDirs = %v, want PathConflictError", err)
	}
	if !strings.Contains(conflict.Path, "metadata") {
		t.Errorf("conflict path %q does not name the offending component", conflict.Path)
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"proteomics-2024", "x", "my_project", "Run.2"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", ".", "..", "a/b", "nested/deeper/name"}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) = nil, want error", name)
		}
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("%s exists but is not a directory", path)
	}
}

func assertEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("%s is a directory, want a file", path)
		return
	}
	if info.Size() != 0 {
		t.Errorf("%s has %d bytes, want an empty placeholder", path, info.Size())
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
