// internal/version/version.go
package version

// Version is stamped manually at release time.
const Version = "0.4.1"
