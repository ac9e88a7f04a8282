// Package sendkittest provides an in-process fake of the SendKit API for tests.
//
// The fake implements POST /v1/emails and POST /v1/emails/mime, checks the
// bearer token, records every request, and can be told to fail:
//
//	srv := sendkittest.NewServer("sk_test")
//	defer srv.Close()
//
//	client, _ := sendkit.NewWithBaseURL("sk_test", srv.URL)
//	resp, err := client.Emails.Send(ctx, req)
//
//	srv.FailWith(http.StatusUnprocessableEntity,
//	    `{"name":"validation_error","message":"bad","statusCode":422}`)
//
// Accepted emails receive a random UUID as their id.
package sendkittest
