// Package mirror copies emoji images from federated servers into object
// storage so catalogs stay browsable when the origin is down.
//
// A mirror run walks the host's catalog (through the directory feature,
// which applies its usual freshness rules) and downloads each image into
// the configured bucket under emoji/{host}/{shortcode}{ext}. Downloads run
// concurrently with a fixed bound. A single failed image is recorded in the
// run's report and does not abort the rest of the run.
//
// The feature is disabled when no object storage is configured.
//
// # HTTP Endpoints
//
//   - POST /mirror/:host       : mirror the host's emoji images
//   - GET  /mirror/:host/:file : serve a mirrored image
package mirror
