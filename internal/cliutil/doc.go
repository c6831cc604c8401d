// Package cliutil provides the small file plumbing shared by the
// khash, kcipher, and ecutil command-line tools, grounded on
// _examples/original_source/src/util/FileUtilities.java. Unlike the
// original, failures are returned as errors rather than terminating the
// process directly, so each cmd/*/main.go controls its own exit code and
// diagnostic wording.
package cliutil
