// Package testsupport builds spreadsheet and target file fixtures for tests
// across the module.
package testsupport
