// Package svc provides service layer components for fmaa.
//
// This package contains the business logic layer that coordinates between
// the CLI commands and the underlying filesystem and package backends.
//
// Subpackages:
//   - pkgmgr: Platform package manager abstraction (Termux pkg/apt)
//   - provisioner: Desired-state workspace reconciliation
package svc
