package domain

// Seat identifies one reserved place in the venue seating plan. Label and
// category together determine the rendered ticket content.
type Seat struct {
	Label    string `json:"label"`
	Category string `json:"category"`
}

// SeatPDFArtifact is an in-memory rendered ticket document for a single
// seat. It is owned by the delivery pipeline until attached to the outbound
// message, then discarded.
type SeatPDFArtifact struct {
	Filename string
	Content  []byte
}
