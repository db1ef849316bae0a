// Package status defines the availability classification produced for
// every (platform, username) pair.
//
// A Status is an immutable value of one of four kinds: Available, Taken,
// InvalidFormat or Error. Error statuses carry a short machine-oriented
// reason tag:
//
//	timeout            per-request deadline exceeded
//	network:<cause>    connection-level failure (dns, refused, reset, tls)
//	unknown:<cause>    any other failure inside a probe
//	status:<code>      HTTP status with no specific rule
//	task-fail:<cause>  a probe unit failed outside its own error handling
//	no-result          the delegated lookup omitted the pair
//	sfailed:<cause>    the delegated lookup failed wholesale
package status
