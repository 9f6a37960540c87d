// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// Protocol command names.
const (
	CmdFolderSync    = "FolderSync"
	CmdSync          = "Sync"
	CmdPing          = "Ping"
	CmdGetAttachment = "GetAttachment"
	CmdSendMail      = "SendMail"
)

// Header names used by the protocol.
const (
	HeaderProtocolVersion  = "MS-ASProtocolVersion"
	HeaderProtocolVersions = "MS-ASProtocolVersions"
)

// MimeTypeMessage is the Content-Type of mail submission commands.
const MimeTypeMessage = "message/rfc822"

// Command is one protocol request.
type Command struct {
	// Name is the value of the Cmd query parameter.
	Name string
	// Body is the serialized command document.
	Body []byte
	// ContentType is the serializer mime type. Mail submission commands
	// always use [MimeTypeMessage].
	ContentType string
	// ProtocolVersion is sent in the MS-ASProtocolVersion header when set.
	ProtocolVersion string
	// ReadTimeout overrides the adapter's default read budget.
	ReadTimeout time.Duration
	// ExtraQuery is appended verbatim to the query string, e.g.
	// "&SaveInSent=T".
	ExtraQuery string
}

func (c Command) contentType() string {
	if c.Name == CmdSendMail || strings.HasPrefix(c.Name, CmdSendMail+"&") {
		return MimeTypeMessage
	}
	return c.ContentType
}

// Response is a completed HTTP exchange whose body has not been read.
type Response struct {
	StatusCode int
	Header     http.Header
	// ContentLength is the declared body length, -1 when unknown.
	ContentLength int64
	// TransferEncoding lists the transfer codings, outermost first.
	TransferEncoding []string
	Body             io.ReadCloser

	cancel context.CancelFunc
}

// Close releases the body and the read deadline attached to the request.
func (r *Response) Close() error {
	if r == nil {
		return nil
	}
	var err error
	if r.Body != nil {
		err = r.Body.Close()
	}
	if r.cancel != nil {
		r.cancel()
	}
	return err
}

// IsSuccess reports whether the status is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// IsAuthFailure reports whether the server rejected the credentials.
func (r *Response) IsAuthFailure() bool {
	return r.StatusCode == http.StatusUnauthorized || r.StatusCode == http.StatusForbidden
}

// IsChunked reports whether the body uses chunked transfer coding.
func (r *Response) IsChunked() bool {
	for _, te := range r.TransferEncoding {
		if strings.EqualFold(te, "chunked") {
			return true
		}
	}
	return strings.Contains(strings.ToLower(r.Header.Get("Transfer-Encoding")), "chunked")
}

// ContentType returns the Content-Type header of the response.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}
