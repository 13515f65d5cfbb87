// Package pkgmgr abstracts the platform package manager.
//
// The Termux implementation shells out to pkg (falling back to apt). The
// provisioner only depends on the Manager interface so tests can substitute
// a recording fake.
package pkgmgr
