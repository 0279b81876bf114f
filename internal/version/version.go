// ABOUTME: Build and product identification constants
// ABOUTME: Reported in startup logs
package version

const (
	// Version is the software version, overridden at release time.
	Version = "0.1.0"

	// Product is the product name reported in logs.
	Product = "QuarryCraft Playtest"

	// Manufacturer identifies the project.
	Manufacturer = "QuarryCraft"
)
