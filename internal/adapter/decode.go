// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"io"
)

// DecodeBody materializes the body of resp.
//
// A chunked body is not decoded: the server is expected to send an explicit
// Content-Length for every command, so chunked replies yield no body and the
// caller decides whether that is fatal. A zero or missing length also yields
// no body. Otherwise the body is read until the declared length is
// satisfied; a body that ends early is an [ErrTransport].
func DecodeBody(resp *Response) ([]byte, error) {
	if resp.IsChunked() || resp.ContentLength <= 0 || resp.Body == nil {
		return nil, nil
	}

	buf := make([]byte, resp.ContentLength)
	read := 0
	for read < len(buf) {
		n, err := resp.Body.Read(buf[read:])
		read += n
		if err != nil {
			if read == len(buf) && errors.Is(err, io.EOF) {
				break
			}
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: body ended after %d of %d bytes", ErrTransport, read, len(buf))
			}
			return nil, fmt.Errorf("%w: reading body: %s", ErrTransport, err.Error())
		}
	}

	return buf, nil
}

// DecodeString is [DecodeBody] returning a string. No body yields "".
func DecodeString(resp *Response) (string, error) {
	body, err := DecodeBody(resp)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
