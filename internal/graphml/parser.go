/*
    Copyright (c) 2026 by the propgraph authors

    Permission is hereby granted, free of charge, to any person obtaining a copy
    of this software and associated documentation files (the "Software"), to deal
    in the Software without restriction, including without limitation the rights
    to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
    copies of the Software, and to permit persons to whom the Software is
    furnished to do so, subject to the following conditions:

    The above copyright notice and this permission notice shall be included in
    all copies or substantial portions of the Software.

    THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
    IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
    FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
    AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
    LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
    OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
    SOFTWARE.
*/

// Package graphml implements the GraphML stream parser (C6): an
// event-driven consumer of XML tokens dispatching <key>, <node>, <edge>,
// and <data> into the columnar and topology builders.
//
// Built on encoding/xml.Decoder, which plays the role of the external
// streaming tokenizer; this file is the dispatch state machine, the same
// shape as the teacher's hprof.go ReadHeap tag-dispatch loop, substituting
// XML element names for HPROF's binary record tags.
package graphml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/pamvc/propgraph/internal/columnar"
	"github.com/pamvc/propgraph/internal/diag"
	"github.com/pamvc/propgraph/internal/topology"
)

type state int

const (
	stateStart state = iota
	stateInGraph
	stateInNode
	stateInEdge
	stateDone
)

var keyAllowedAttrs = map[string]bool{
	"id": true, "for": true, "attr.name": true, "attr.type": true, "attr.list": true,
}
var nodeAllowedAttrs = map[string]bool{"id": true, "labels": true, "label": true}
var edgeAllowedAttrs = map[string]bool{
	"id": true, "source": true, "target": true, "labels": true, "label": true,
}
var dataAllowedAttrs = map[string]bool{"key": true}

// Parser runs the GraphML stream parser and owns the property, label, and
// topology builders it feeds.
type Parser struct {
	chunkSize int

	nodeKeys map[string]KeyDef
	edgeKeys map[string]KeyDef

	nodeProps  *columnar.PropertyTable
	nodeLabels *columnar.LabelTable
	edgeProps  *columnar.PropertyTable
	edgeTypes  *columnar.LabelTable
	topo       *topology.Builder

	warnings []diag.Warning
	fatalErr error

	state     state
	skipDepth int

	curAccepted    bool
	curLabelsSet   bool
	curSrc, curDst string
	curEdgeTypeSet bool

	inData       bool
	curDataKey   string
	curText      strings.Builder
}

// NewParser constructs a Parser with empty builders sized to chunkSize.
func NewParser(chunkSize int) *Parser {
	return &Parser{
		chunkSize:  chunkSize,
		nodeKeys:   map[string]KeyDef{},
		edgeKeys:   map[string]KeyDef{},
		nodeProps:  columnar.NewPropertyTable(chunkSize),
		nodeLabels: columnar.NewLabelTable(chunkSize),
		edgeProps:  columnar.NewPropertyTable(chunkSize),
		edgeTypes:  columnar.NewLabelTable(chunkSize),
		topo:       topology.NewBuilder(),
	}
}

func (p *Parser) NodeProperties() *columnar.PropertyTable { return p.nodeProps }
func (p *Parser) NodeLabels() *columnar.LabelTable        { return p.nodeLabels }
func (p *Parser) EdgeProperties() *columnar.PropertyTable { return p.edgeProps }
func (p *Parser) EdgeTypes() *columnar.LabelTable         { return p.edgeTypes }
func (p *Parser) Topology() *topology.Builder             { return p.topo }
func (p *Parser) Warnings() []diag.Warning                { return p.warnings }

// Parse streams r through the state machine described in §4.6, mutating
// the builders returned by the accessors above. It returns a wrapped
// diag.ErrParseFailure if the XML reader fails, or a wrapped
// diag.ErrTypeMismatch if a property value could not be coerced to its
// column's declared type.
func (p *Parser) Parse(r io.Reader) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", diag.ErrParseFailure, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			p.onStart(t)
		case xml.EndElement:
			p.onEnd(t)
		case xml.CharData:
			p.onText(t)
		}
		if p.fatalErr != nil {
			return p.fatalErr
		}
	}
}

func (p *Parser) warn(kind diag.WarningKind, message string) {
	p.warnings = append(p.warnings, diag.Warning{Kind: kind, Message: message})
}

func (p *Parser) collectWarnings(ws []diag.Warning) {
	p.warnings = append(p.warnings, ws...)
}

func getAttr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func (p *Parser) checkAttrs(se xml.StartElement, allowed map[string]bool) {
	for _, a := range se.Attr {
		if !allowed[a.Name.Local] {
			p.warn(diag.UnknownAttribute, fmt.Sprintf("unexpected attribute %q on <%s>", a.Name.Local, se.Name.Local))
		}
	}
}

func (p *Parser) onStart(se xml.StartElement) {
	if p.skipDepth > 0 {
		p.skipDepth++
		return
	}
	name := se.Name.Local
	switch p.state {
	case stateStart:
		switch name {
		case "graphml":
		case "key":
			p.registerKey(se)
		case "graph":
			p.state = stateInGraph
		default:
			p.warn(diag.UnknownElement, fmt.Sprintf("unrecognized element <%s>", name))
			p.skipDepth = 1
		}
	case stateInGraph:
		switch name {
		case "node":
			p.beginNode(se)
			p.state = stateInNode
		case "edge":
			p.beginEdge(se)
			p.state = stateInEdge
		default:
			p.warn(diag.UnknownElement, fmt.Sprintf("unrecognized element <%s>", name))
			p.skipDepth = 1
		}
	case stateInNode, stateInEdge:
		switch name {
		case "data":
			p.beginData(se)
		default:
			p.warn(diag.UnknownElement, fmt.Sprintf("unrecognized element <%s>", name))
			p.skipDepth = 1
		}
	default:
		p.warn(diag.UnknownElement, fmt.Sprintf("unrecognized element <%s>", name))
		p.skipDepth = 1
	}
}

func (p *Parser) onEnd(ee xml.EndElement) {
	if p.skipDepth > 0 {
		p.skipDepth--
		return
	}
	switch ee.Name.Local {
	case "data":
		p.endData()
	case "node":
		p.commitNode()
		p.state = stateInGraph
	case "edge":
		p.commitEdge()
		p.state = stateInGraph
	case "graph":
		p.state = stateDone
	}
}

func (p *Parser) onText(cd xml.CharData) {
	if p.skipDepth > 0 {
		return
	}
	if p.inData {
		p.curText.Write(cd)
	}
}

func (p *Parser) registerKey(se xml.StartElement) {
	p.checkAttrs(se, keyAllowedAttrs)
	id := getAttr(se, "id")
	forAttr := getAttr(se, "for")
	attrName := getAttr(se, "attr.name")
	attrType := getAttr(se, "attr.type")
	attrList := getAttr(se, "attr.list")

	if id == "label" || id == "IGNORE" {
		return
	}
	name := attrName
	if name == "" {
		name = id
	}
	kind, unknown := ExtractType(attrType, attrList)
	if unknown {
		p.warn(diag.UnknownAttribute, fmt.Sprintf("key %q has unrecognized attr.type %q; treating as string", id, attrType))
	}
	def := KeyDef{ID: id, For: forAttr, Name: name, Kind: kind}
	if forAttr == "edge" {
		p.edgeKeys[id] = def
		p.edgeProps.EnsureColumn(name, kind)
	} else {
		p.nodeKeys[id] = def
		p.nodeProps.EnsureColumn(name, kind)
	}
}

func (p *Parser) applyLabels(table *columnar.LabelTable, raw string) {
	s := raw
	if len(s) > 0 && s[0] == ':' {
		s = s[1:]
	}
	for _, lbl := range strings.Split(s, ":") {
		if lbl == "" {
			continue
		}
		table.MarkTrue(lbl)
	}
}

func (p *Parser) beginNode(se xml.StartElement) {
	p.checkAttrs(se, nodeAllowedAttrs)
	p.curLabelsSet = false
	id := getAttr(se, "id")
	if id == "" {
		p.curAccepted = false
		return
	}
	if _, ok := p.topo.AddNode(id); !ok {
		p.warn(diag.DuplicateNodeID, fmt.Sprintf("duplicate node id %q", id))
		p.curAccepted = false
		return
	}
	p.curAccepted = true
	labelsAttr := getAttr(se, "labels")
	if labelsAttr == "" {
		labelsAttr = getAttr(se, "label")
	}
	if labelsAttr != "" {
		p.applyLabels(p.nodeLabels, labelsAttr)
		p.curLabelsSet = true
	}
}

func (p *Parser) beginEdge(se xml.StartElement) {
	p.checkAttrs(se, edgeAllowedAttrs)
	p.curEdgeTypeSet = false
	src := getAttr(se, "source")
	dst := getAttr(se, "target")
	p.curSrc, p.curDst = src, dst
	accepted := src != "" && dst != "" && p.topo.HasNode(src) && p.topo.HasNode(dst)
	p.curAccepted = accepted
	if !accepted {
		p.warn(diag.DanglingEdge, fmt.Sprintf("edge %s->%s unresolved", src, dst))
		return
	}
	typeAttr := getAttr(se, "labels")
	if typeAttr == "" {
		typeAttr = getAttr(se, "label")
	}
	if typeAttr != "" {
		p.edgeTypes.MarkTrue(typeAttr)
		p.curEdgeTypeSet = true
	}
}

func (p *Parser) beginData(se xml.StartElement) {
	p.checkAttrs(se, dataAllowedAttrs)
	p.curDataKey = getAttr(se, "key")
	p.curText.Reset()
	p.inData = true
}

func (p *Parser) endData() {
	p.inData = false
	key := p.curDataKey
	text := p.curText.String()
	if !p.curAccepted || key == "" || key == "IGNORE" {
		return
	}
	if key == "label" || key == "labels" {
		switch p.state {
		case stateInNode:
			if !p.curLabelsSet {
				p.applyLabels(p.nodeLabels, text)
				p.curLabelsSet = true
			}
		case stateInEdge:
			if !p.curEdgeTypeSet {
				p.edgeTypes.MarkTrue(text)
				p.curEdgeTypeSet = true
			}
		}
		return
	}

	switch p.state {
	case stateInNode:
		name, kind := key, columnar.KindString
		if def, ok := p.nodeKeys[key]; ok {
			name, kind = def.Name, def.Kind
		}
		ws, err := p.nodeProps.AppendValue(name, text, kind)
		p.collectWarnings(ws)
		if err != nil {
			p.fatalErr = err
		}
	case stateInEdge:
		name, kind := key, columnar.KindString
		if def, ok := p.edgeKeys[key]; ok {
			name, kind = def.Name, def.Kind
		}
		ws, err := p.edgeProps.AppendValue(name, text, kind)
		p.collectWarnings(ws)
		if err != nil {
			p.fatalErr = err
		}
	}
}

func (p *Parser) commitNode() {
	if !p.curAccepted {
		return
	}
	p.nodeProps.Commit()
	p.nodeLabels.Commit()
}

func (p *Parser) commitEdge() {
	if !p.curAccepted {
		return
	}
	if p.topo.AddEdge(p.curSrc, p.curDst) {
		p.edgeProps.Commit()
		p.edgeTypes.Commit()
	}
}
