// Package storage provides the object storage client for CSV reference files.
//
// Each faction's CSV file lives in a bucket under a configurable prefix,
// named by the faction's display name (e.g. "csv/Northern Tribes.csv").
// The Client interface abstracts the Minio SDK so the roster feature can be
// tested against a mock (see the mocks subpackage).
package storage
