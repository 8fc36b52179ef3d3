// Package etree encodes templates as XML documents for exchange with other
// tools.
//
// The document form is:
//
//	<template holes="2"><literal>&lt;b&gt;</literal><hole/>...</template>
package etree

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/fwojciec/templatemaker"
)

// Encode renders t as an XML document. Literals containing characters that
// XML 1.0 cannot represent are rejected with EINVALID.
func Encode(t templatemaker.Template) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("template")
	root.CreateAttr("holes", strconv.Itoa(t.HoleCount()))

	for i, seg := range t {
		if seg.IsHole() {
			root.CreateElement("hole")
			continue
		}
		if !isXMLText(seg.Text) {
			return nil, templatemaker.Errorf(templatemaker.EINVALID, "segment %d holds characters XML cannot represent", i)
		}
		root.CreateElement("literal").SetText(seg.Text)
	}

	return doc.WriteToBytes()
}

// Decode parses a document produced by Encode.
func Decode(data []byte) (templatemaker.Template, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, templatemaker.Errorf(templatemaker.EINVALID, "parsing template XML: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "template" {
		return nil, templatemaker.Errorf(templatemaker.EINVALID, "missing <template> root element")
	}

	var t templatemaker.Template
	for _, el := range root.ChildElements() {
		switch el.Tag {
		case "literal":
			t = append(t, templatemaker.Literal(el.Text()))
		case "hole":
			t = append(t, templatemaker.Hole())
		default:
			return nil, templatemaker.Errorf(templatemaker.EINVALID, "unexpected element <%s>", el.Tag)
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	if want := root.SelectAttrValue("holes", ""); want != "" && want != strconv.Itoa(t.HoleCount()) {
		return nil, templatemaker.Errorf(templatemaker.EINVALID, "template declares %s holes but has %d", want, t.HoleCount())
	}
	return t, nil
}

// isXMLText reports whether s only holds characters allowed by the XML 1.0
// Char production.
func isXMLText(s string) bool {
	for _, r := range s {
		switch {
		case r == utf8.RuneError:
			return false
		case r == '\t', r == '\n', r == '\r':
		case r < 0x20:
			return false
		case r >= 0xFFFE && r <= 0xFFFF:
			return false
		}
	}
	return true
}

// String is a convenience for callers printing an encoded template.
func String(t templatemaker.Template) (string, error) {
	data, err := Encode(t)
	if err != nil {
		return "", fmt.Errorf("encoding template: %w", err)
	}
	return string(data), nil
}
