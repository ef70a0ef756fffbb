// Package client contains the portal's link to the remote voting API and the
// bootstrap of the local state database.
//
// # Overview
//
//  1. Client is the API contract: Register, Login and Ping. Results are
//     explicit variants (OutcomeSuccess, OutcomeSoftFailure,
//     OutcomeTransportFailure) rather than errors to intercept.
//  2. HTTPClient implements it over JSON/HTTP against a base address such as
//     http://localhost:5148/api, adding a bearer token read from a
//     TokenSource before every request. No retries; no timeout unless
//     WithTimeout is given.
//  3. InitDatabase and RunMigrations open the SQLite state database and apply
//     the embedded goose migrations.
//
// # Error Handling
//
// Transport failures carry ErrUnavailable or ErrUnexpectedStatus in the
// result's Err, matchable with errors.Is. ErrMalformedResponse marks a 2xx
// reply that could not be decoded: a transport failure for Register, a soft
// failure for Login, since the API did answer.
package client
