package prowl

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// Status is the outcome reported by the API in the response envelope.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Envelope is the parsed form of one API response. Every response wraps a
// single status element in a <prowl> root:
//
//	<prowl><success code="200" remaining="975" resetdate="1256310030"/></prowl>
//	<prowl><error code="401">Invalid API key</error></prowl>
//
// Attributes always contains "code"; success responses additionally carry
// "remaining" and "resetdate". Text holds the element content verbatim and
// is non-empty for every error envelope.
type Envelope struct {
	Status     Status
	Attributes map[string]int
	Text       string
}

// Code returns the response code attribute.
func (e *Envelope) Code() int {
	return e.Attributes["code"]
}

type xmlElement struct {
	XMLName  xml.Name
	Attrs    []xml.Attr   `xml:",any,attr"`
	Text     string       `xml:",chardata"`
	Children []xmlElement `xml:",any"`
}

// parseEnvelope validates raw against the envelope contract and returns the
// parsed result. Any structural deviation yields a *MalformedResponseError;
// the parser never relaxes a rule, since the envelope is the only contract
// boundary against an unversioned wire format.
func parseEnvelope(raw []byte) (*Envelope, error) {
	var root xmlElement
	if err := xml.Unmarshal(raw, &root); err != nil {
		return nil, &MalformedResponseError{Reason: "invalid xml: " + err.Error()}
	}

	if root.XMLName.Local != "prowl" {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("unexpected tag %q", root.XMLName.Local)}
	}

	if len(root.Children) != 1 {
		return nil, &MalformedResponseError{Reason: "too many children"}
	}
	node := root.Children[0]

	status := Status(node.XMLName.Local)
	if status != StatusSuccess && status != StatusError {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("unknown status %q", node.XMLName.Local)}
	}

	rawCode := ""
	for _, attr := range node.Attrs {
		if attr.Name.Local == "code" {
			rawCode = attr.Value
		}
	}
	if rawCode == "" {
		return nil, &MalformedResponseError{Reason: "no response code"}
	}

	if status == StatusError && node.Text == "" {
		return nil, &MalformedResponseError{Reason: "no error message with code " + rawCode}
	}

	attrs := make(map[string]int, len(node.Attrs))
	for _, attr := range node.Attrs {
		value, err := strconv.Atoi(attr.Value)
		if err != nil {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("non-integer attribute %s=%q", attr.Name.Local, attr.Value)}
		}
		attrs[attr.Name.Local] = value
	}

	return &Envelope{Status: status, Attributes: attrs, Text: node.Text}, nil
}
