// Package model provides the data types shared across the flightgrid
// pipeline.
//
// The input side of the model is the page contract: a [Page] carries text
// lines in reading order plus zero or more [TableBlock] values with bounding
// geometry and a cell grid. Source loaders produce pages; the schedule
// parser consumes them and produces [FlightRecord] values.
//
// The output side is the flat record set ([]FlightRecord) and the
// per-weekday [Matrix] built from it: rows keyed by flight, route and
// direction, columns keyed by date, cells holding a scheduled time string.
//
// # Geometry
//
// [BBox] uses a top-origin coordinate system: Y measures the distance from
// the top of the page and grows downward, matching the layout dumps produced
// by word-geometry extractors. Top() is therefore the smaller Y value.
package model
