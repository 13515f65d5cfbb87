// Package apis provides API type definitions for fmaa resources.
//
// This package contains versioned API types following Kubernetes API
// conventions:
//
//   - workspace: Workspace manifest types for fmaa declarative configuration
//
// The API types are designed to be serializable to YAML and support
// declarative configuration workflows.
package apis
