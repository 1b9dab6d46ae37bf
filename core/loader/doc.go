// Package loader provides the plugin-like feature loading system.
//
// Features register their routes through the Feature interface and are
// initialized together by the Manager. This keeps the HTTP surface modular:
// a feature can be developed and tested in isolation and wired in one line.
package loader
