// Package export renders weekday matrices to interchange formats. Each
// format implements the Exporter interface; CSV additionally round-trips
// through ReadMatrixCSV.
package export
