package xmldoc

import (
	"io"

	"github.com/aria3ppp/intraship/internal/intraship/domain"
	"github.com/beevik/etree"
)

const (
	IntrashipNamespace = "http://de.ws.intraship"
	CISNamespace       = "http://dhl.de/webservice/cisbase"
)

type document struct {
	doc  *etree.Document
	root *etree.Element
}

// NewShipmentOrder starts a ShipmentOrder block, the unit the carrier
// accepts one shipment in.
func NewShipmentOrder(sequenceNumber string) *document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ShipmentOrder")
	root.CreateAttr("xmlns", IntrashipNamespace)
	root.CreateAttr("xmlns:cis", CISNamespace)
	root.CreateElement("SequenceNumber").SetText(sequenceNumber)

	return &document{doc: doc, root: root}
}

func (d *document) Writer() domain.XMLWriter {
	return NewWriter(d.root)
}

func (d *document) Root() *etree.Element {
	return d.root
}

func (d *document) String() (string, error) {
	d.doc.Indent(2)
	return d.doc.WriteToString()
}

func (d *document) WriteTo(w io.Writer) (int64, error) {
	d.doc.Indent(2)
	return d.doc.WriteTo(w)
}

type writer struct {
	el *etree.Element
}

var _ domain.XMLWriter = (*writer)(nil)

// NewWriter returns a writer that appends children to el.
func NewWriter(el *etree.Element) *writer {
	return &writer{el: el}
}

func (w *writer) Node(tag string, body func(domain.XMLWriter)) {
	body(&writer{el: w.el.CreateElement(tag)})
}

func (w *writer) Leaf(tag, value string) {
	w.el.CreateElement(tag).SetText(value)
}
