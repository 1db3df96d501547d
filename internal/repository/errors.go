// Package repository contains data access logic separated from HTTP handlers.
// Every query that reads or mutates a row carries a compound filter on both
// the row id and the owning identity, so authorization lives in the same
// statement as the data access and a mutation aimed at another tenant's row
// matches zero rows instead of erroring.  By convention a mutation that
// matched nothing surfaces as sql.ErrNoRows, which handlers translate into an
// empty result; reads surface per-entity not-found sentinels declared next to
// their repositories.
package repository

import "errors"

// ErrInvalidOwner is returned when a repository method is called with an
// empty owner identity.  It guards against a bug in the session layer ever
// widening a query to every tenant's rows.
var ErrInvalidOwner = errors.New("empty owner identity")
