// Package platform defines the closed set of platforms namecheck knows how
// to check and the handle syntax each of them accepts.
//
// Platforms come in two kinds. [KindProbe] platforms are checked by issuing
// an HTTP request to the public profile URL and classifying the response.
// [KindDelegated] platforms are checked through the batch lookup subsystem.
// The two sets never overlap.
//
// The set is fixed at build time; there is no runtime registration. Use
// [Parse] to turn user input into an [ID] and [All], [Probed] or
// [Delegated] to enumerate the set in sorted order.
//
// # Validation
//
// [Valid] is the predicate used before any network call. [Check] explains
// a rejection rule by rule for the validate command:
//
//	res := platform.Check(platform.GitHub, "-bad-")
//	for _, issue := range res.Errors() {
//	    fmt.Println(issue.Rule, issue.Message)
//	}
package platform
