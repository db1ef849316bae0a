// Package web is a delegated lookup subsystem that answers availability
// for Twitter, Instagram and Reddit through their public signup endpoints.
//
// A Client implements lookup.Batcher: one Query call covers every
// requested (platform, username) pair, running the individual requests
// with bounded concurrency. Instagram requires a CSRF token obtained from
// its signup page; the token is kept in a cookie jar that lives for a
// single Query call. Failing to obtain it fails the whole batch.
package web
