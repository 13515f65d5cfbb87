// Package cmd provides the command-line interface for fmaa.
//
// This package contains the root command and its subcommands:
//   - provision: Reconcile the workspace with the manifest
//   - init: Scaffold a new fmaa.yaml manifest
//   - schema: Print the JSON schema for the workspace manifest
package cmd
