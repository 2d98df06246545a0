package domain

// XMLWriter is the sink a shipment renders itself into. Tags may carry a
// namespace prefix such as "cis:EKP".
type XMLWriter interface {
	// Node opens an element named tag and calls body with a writer scoped to it.
	Node(tag string, body func(XMLWriter))
	// Leaf writes an element named tag holding value as text.
	Leaf(tag, value string)
}

// XMLAppender is implemented by everything that knows its own block in the
// carrier request.
type XMLAppender interface {
	AppendToXML(w XMLWriter)
}
