// Package catalog holds the service catalog model read from the services
// workbook and the order preserving grouping both generated blocks share.
package catalog
