package wire

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
)

// MimeTypeXML is the Content-Type of documents produced by [XMLCodec].
const MimeTypeXML = "text/xml"

// ErrUnbalanced is reported when End is called with no open element.
var ErrUnbalanced = errors.New("wire: end without matching start")

// XMLCodec renders command documents as XML.
type XMLCodec struct{}

// NewXMLCodec returns the XML codec.
func NewXMLCodec() XMLCodec {
	return XMLCodec{}
}

// NewBuilder implements [Codec].
func (XMLCodec) NewBuilder() Builder {
	b := &xmlBuilder{}
	b.enc = xml.NewEncoder(&b.buf)
	return b
}

// MimeType implements [Codec].
func (XMLCodec) MimeType() string {
	return MimeTypeXML
}

type xmlBuilder struct {
	buf   bytes.Buffer
	enc   *xml.Encoder
	stack []string
	err   error
}

func (b *xmlBuilder) token(t xml.Token) {
	if b.err != nil {
		return
	}
	if err := b.enc.EncodeToken(t); err != nil {
		b.err = fmt.Errorf("wire: encode token: %w", err)
	}
}

func (b *xmlBuilder) Start(tag string) Builder {
	b.token(xml.StartElement{Name: xml.Name{Local: tag}})
	b.stack = append(b.stack, tag)
	return b
}

func (b *xmlBuilder) End() Builder {
	if len(b.stack) == 0 {
		if b.err == nil {
			b.err = ErrUnbalanced
		}
		return b
	}
	tag := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.token(xml.EndElement{Name: xml.Name{Local: tag}})
	return b
}

func (b *xmlBuilder) Text(text string) Builder {
	b.token(xml.CharData(text))
	return b
}

func (b *xmlBuilder) Data(tag, value string) Builder {
	return b.Start(tag).Text(value).End()
}

func (b *xmlBuilder) Tag(tag string) Builder {
	return b.Start(tag).End()
}

func (b *xmlBuilder) Bytes() ([]byte, error) {
	for len(b.stack) > 0 {
		b.End()
	}
	if b.err != nil {
		return nil, b.err
	}
	if err := b.enc.Flush(); err != nil {
		return nil, fmt.Errorf("wire: flush: %w", err)
	}
	return b.buf.Bytes(), nil
}
