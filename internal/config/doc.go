// Package config provides configuration structures and utilities for webrecon.
// It defines the runtime options for the probe pipeline, the site template
// catalog used by presence probing, and the search-engine settings used by
// harvesting.
package config
