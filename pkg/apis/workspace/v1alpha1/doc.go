// Package v1alpha1 defines the workspace manifest schema.
//
// A Workspace manifest declares the desired state of an FMAA development
// environment: the OS packages to ensure, the project directory tree, and
// the static files to write. The provisioner consumes the manifest as an
// ordered list of steps and reconciles the live machine against it.
package v1alpha1
