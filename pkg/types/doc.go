// Package types defines the taxonomy schema model, observation values, and
// the observation store for the lifetracker core, along with the standard
// error values shared by every component.
//
// All mutating operations are pure: they return a new value and leave their
// receiver untouched. Persistence is the caller's concern.
package types
