// Package validator holds the result model for offline handle checks and
// renders it as text or JSON.
//
// A [Result] lists every rule a value breaks rather than stopping at the
// first, so one report explains all the changes a handle needs.
package validator
