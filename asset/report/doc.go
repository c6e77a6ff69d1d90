// Package report prints the outcome of a match run: a banner, request and
// timing status lines and the unique matched sources in text, JSON or table
// form.
package report
