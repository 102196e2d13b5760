// Package view derives display collections from a translation collection:
// filters, sorts, grouping, completeness statistics, bulk validation, merging
// of update lists, and point-in-time backups.
//
// Every function is pure. Inputs are never modified; functions that return a
// reordered or merged collection return a new slice.
package view
