package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/labforge-dev/labforge/internal/layout"
)

// Permission constants for created entries.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Request describes one scaffold invocation. It is built once from the
// command line and never mutated.
type Request struct {
	Name     string // project name, used verbatim as the leaf directory
	BasePath string // directory under which the project root is created
	DryRun   bool
}

// Root returns the unresolved project root, BasePath/Name.
func (r Request) Root() string {
	return filepath.Join(r.BasePath, r.Name)
}

// Summary holds the outcome of a completed scaffold.
type Summary struct {
	Root      string // absolute project root
	DirCount  int
	FileCount int // placeholder files plus README.md
	NextSteps []string
}

// ValidateName checks that name is usable as a single path component.
// Content beyond filesystem legality is deliberately not validated.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid project name %q", name)
	}
	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		return fmt.Errorf("project name %q must not contain a path separator", name)
	}
	return nil
}

// CheckTarget verifies that nothing occupies the project root yet. It is the
// guard for both dry runs and real creation; passing it does not reserve the
// path (a concurrent writer could still claim it, which is accepted for a
// single-operator tool).
func CheckTarget(root string) error {
	info, err := os.Stat(root)
	if err == nil {
		if info.IsDir() {
			return &AlreadyExistsError{Path: root}
		}
		return &PathConflictError{Path: root}
	}
	if !os.IsNotExist(err) {
		return &FilesystemError{Op: "inspect", Path: root, Err: err}
	}
	return nil
}

// Plan runs the guard and returns the canonical tree text without touching
// the filesystem.
func Plan(req Request) (string, error) {
	if err := ValidateName(req.Name); err != nil {
		return "", err
	}
	if err := CheckTarget(req.Root()); err != nil {
		return "", err
	}
	return layout.Tree(req.Name), nil
}

// Create materializes the full skeleton at req.Root. The target must not
// exist beforehand. On failure, entries already created are left in place;
// there is no rollback.
func Create(req Request) (*Summary, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}
	root := req.Root()
	if err := CheckTarget(root); err != nil {
		return nil, err
	}

	if err := CreateDirs(root); err != nil {
		return nil, err
	}

	readmePath := filepath.Join(root, "README.md")
	if err := os.WriteFile(readmePath, []byte(RenderREADME(req.Name)), FilePerm); err != nil {
		return nil, &FilesystemError{Op: "write file", Path: readmePath, Err: err}
	}

	for _, f := range layout.Files {
		p := filepath.Join(root, f)
		if err := os.WriteFile(p, nil, FilePerm); err != nil {
			return nil, &FilesystemError{Op: "write file", Path: p, Err: err}
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		// Creation succeeded; fall back to the unresolved path.
		abs = root
	}

	return &Summary{
		Root:      abs,
		DirCount:  len(layout.Dirs),
		FileCount: len(layout.Files) + 1,
		NextSteps: []string{
			fmt.Sprintf("cd %s", abs),
			"Update README.md and other files with your project information",
			"Modify the project structure as needed for your specific requirements.",
		},
	}, nil
}

// CreateDirs creates every skeleton directory under root, parents included.
// Directories already present are fine; a non-directory component aborts
// with a PathConflictError naming the offending path.
func CreateDirs(root string) error {
	for _, d := range layout.Dirs {
		p := filepath.Join(root, d)
		if err := os.MkdirAll(p, DirPerm); err != nil {
			if errors.Is(err, syscall.ENOTDIR) {
				return &PathConflictError{Path: p}
			}
			return &FilesystemError{Op: "create directory", Path: p, Err: err}
		}
	}
	return nil
}
