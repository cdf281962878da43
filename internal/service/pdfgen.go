package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/nuansacp2025/ticketing/internal/config"
	"github.com/nuansacp2025/ticketing/internal/domain"
	apperrors "github.com/nuansacp2025/ticketing/pkg/util"
)

// SeatPDFGenerator renders one in-memory PDF ticket per seat. Pure batch
// transform: no network or filesystem I/O.
type SeatPDFGenerator struct {
	eventName string
	shareLink string
}

// NewSeatPDFGenerator creates the generator.
func NewSeatPDFGenerator(cfg config.EventConfig) *SeatPDFGenerator {
	return &SeatPDFGenerator{eventName: cfg.Name, shareLink: cfg.ShareLink}
}

// Generate renders seats in input order, one artifact per seat. A failure on
// any seat aborts the whole batch so partial attachment sets are never sent.
func (g *SeatPDFGenerator) Generate(seats []domain.Seat) ([]domain.SeatPDFArtifact, error) {
	artifacts := make([]domain.SeatPDFArtifact, 0, len(seats))
	for _, seat := range seats {
		content, err := g.renderSeat(seat)
		if err != nil {
			return nil, apperrors.NewUpstreamError(
				fmt.Sprintf("render pdf for seat %s", seat.Label), err)
		}
		artifacts = append(artifacts, domain.SeatPDFArtifact{
			Filename: ArtifactFilename(seat),
			Content:  content,
		})
	}
	return artifacts, nil
}

// ArtifactFilename derives a deterministic attachment name from the seat
// identity, so repeated generation for the same seat names the same file.
func ArtifactFilename(seat domain.Seat) string {
	return fmt.Sprintf("seat-%s-%s.pdf", slugify(seat.Label), slugify(seat.Category))
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func (g *SeatPDFGenerator) renderSeat(seat domain.Seat) ([]byte, error) {
	qr, err := qrcode.Encode(g.shareLink, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 14, g.eventName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Seat Confirmation", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 32)
	pdf.CellFormat(0, 18, seat.Label, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 10, seat.Category, "", 1, "C", false, 0, "")
	pdf.Ln(12)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("share-qr", opts, bytes.NewReader(qr))
	// A4 is 210mm wide; center a 50mm QR code.
	pdf.ImageOptions("share-qr", 80, 120, 50, 50, false, opts, 0, "")

	pdf.SetY(175)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, g.shareLink, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
