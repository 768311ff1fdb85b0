// Package usage compares a user's resource consumption against plan limits.
// Everything here is pure; aggregation and locking live in the
// infrastructure and application layers.
package usage

import "math"

const bytesPerMB = 1048576

// Usage is a snapshot of what a user currently holds.
type Usage struct {
	Trainings    int64 `json:"trainings"`
	Certificates int64 `json:"certificates"`
	Designs      int64 `json:"designs"`
	Assets       int64 `json:"assets"`
	StorageMB    int64 `json:"storage_mb"`
}

// StorageMBFromBytes rounds a byte total to whole megabytes.
func StorageMBFromBytes(b int64) int64 {
	return int64(math.Round(float64(b) / bytesPerMB))
}
