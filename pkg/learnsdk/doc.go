// Package learnsdk is the Go client for the Inkwell learning platform API.
//
// A Client handles unauthenticated operations (login, bootstrap, health) and
// produces Sessions. A Session holds the access/refresh token pair and
// transparently retries a request once after refreshing when the server
// rejects the access token. Refresh calls themselves are never retried;
// a failed refresh clears the session.
package learnsdk
