// Package triggers renders the SERVICE_TRIGGERS block: one entry per category
// with its services, sparse pricing objects and trigger pattern lists.
package triggers
