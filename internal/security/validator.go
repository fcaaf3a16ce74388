// Package security provides path validation for server-driven scans.
package security

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nbtools/nbscan/internal/errors"
)

// Validator defines the security validation interface.
type Validator interface {
	ValidatePath(path string) error
	SanitizePath(path string) (string, error)
}

// DefaultValidator rejects paths that reach into system directories and,
// when configured, restricts scans to an allow-list of roots.
type DefaultValidator struct {
	allowedPaths []string
	blockedPaths []string
}

// NewDefaultValidator creates a new default validator with secure defaults.
func NewDefaultValidator() *DefaultValidator {
	return &DefaultValidator{
		allowedPaths: []string{},
		blockedPaths: []string{
			"/etc",
			"/usr/bin",
			"/usr/sbin",
			"/sbin",
			"/bin",
			"/sys",
			"/proc",
		},
	}
}

// WithAllowedPaths sets the allowed roots for notebook access.
func (v *DefaultValidator) WithAllowedPaths(paths []string) *DefaultValidator {
	v.allowedPaths = make([]string, len(paths))
	copy(v.allowedPaths, paths)
	return v
}

// WithBlockedPaths adds blocked paths to the default list.
func (v *DefaultValidator) WithBlockedPaths(paths []string) *DefaultValidator {
	v.blockedPaths = append(v.blockedPaths, paths...)
	return v
}

// ValidatePath validates and checks if a file path is allowed.
func (v *DefaultValidator) ValidatePath(path string) error {
	if !filepath.IsAbs(path) {
		return errors.Security("path must be absolute")
	}

	cleanPath := filepath.Clean(path)
	resolvedPath, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		resolvedPath = cleanPath
	}

	for _, blocked := range v.blockedPaths {
		if strings.HasPrefix(resolvedPath, blocked) {
			return errors.SecurityWithDetails(
				"path is blocked",
				"path accesses restricted system directory",
			)
		}
	}

	if len(v.allowedPaths) > 0 {
		allowed := false
		for _, allowedPath := range v.allowedPaths {
			if strings.HasPrefix(resolvedPath, allowedPath) {
				allowed = true
				break
			}
		}
		if !allowed {
			return errors.SecurityWithDetails(
				"path not allowed",
				"path is not in allowed directories",
			)
		}
	}

	return nil
}

// SanitizePath cleans the path and makes it absolute against the working
// directory.
func (v *DefaultValidator) SanitizePath(path string) (string, error) {
	if path == "" {
		return "", errors.Security("path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return "", errors.Security("path contains null byte")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "failed to resolve working directory")
		}
		path = filepath.Join(cwd, path)
	}

	return filepath.Clean(path), nil
}
