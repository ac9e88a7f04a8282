// Package sendkit adapts a SendKit API client to the mailer.Sender interface.
//
// By default emails go through the structured endpoint. WithMIME composes an
// RFC 822 message locally and uses the raw MIME endpoint instead.
package sendkit
