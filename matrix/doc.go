// Package matrix pivots the flat flight-record set into per-weekday
// recurrence views: one row per (flight, route, direction) key, one column
// per calendar date of the target weekday, each cell holding the scheduled
// time. Duplicate sightings of the same key on the same date keep the first
// value in document traversal order.
package matrix
