package runner

import (
	"os"
	"path/filepath"

	"github.com/swiftcheck/swiftcheck/linter"
)

// Detector identifies Swift project root folders so the linter can locate
// the project configuration file.
type Detector struct {
	// Common project root marker files/directories
	markers []string
}

// NewDetector creates a new project detector instance
func NewDetector() *Detector {
	return &Detector{
		markers: []string{
			"Package.swift",   // Swift package manager projects
			".swiftcheck.yml", // Explicit linter configuration
			".git",            // Generic VCS marker
		},
	}
}

// Project describes a detected Swift project
type Project struct {
	RootPath  string // Absolute path to the project root directory
	ConfigURL string // Path of the configuration file, empty when absent
}

// DetectProject identifies the project root for the given path. When no
// marker is found the starting directory itself is treated as the root.
func (d *Detector) DetectProject(path string) (*Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	startDir := absPath
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	root := d.findProjectRoot(startDir)
	if root == "" {
		root = startDir
	}

	project := &Project{RootPath: root}
	configPath := filepath.Join(root, linter.ConfigFile)
	if _, err := os.Stat(configPath); err == nil {
		project.ConfigURL = configPath
	}
	return project, nil
}

// findProjectRoot searches up from the current directory for project markers
func (d *Detector) findProjectRoot(startDir string) string {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// We've reached the filesystem root with no match
			break
		}
		dir = parent
	}
	return ""
}
