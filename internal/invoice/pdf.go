package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders a Factura B style PDF document.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(inv *Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "ORIGINAL", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "FACTURA B", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Comprobante Nro: %d", inv.Number), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Fecha de Emision: %s", inv.IssuedAt.Format("02/01/2006")), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(40, 6, "Razon Social:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, inv.CompanyName, "", 1, "L", false, 0, "")
	pdf.CellFormat(40, 6, "Domicilio Comercial:", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, inv.CompanyAddress, "", 1, "L", false, 0, "")

	cuit := inv.ClientCUIT
	if cuit == "" {
		cuit = "Sin CUIT"
	}
	pdf.CellFormat(40, 6, "CUIT del Cliente:", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, cuit, "", 1, "L", false, 0, "")
	pdf.CellFormat(40, 6, "Cliente:", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("%s %s", inv.ClientFirstName, inv.ClientLastName), "", 1, "L", false, 0, "")
	pdf.CellFormat(40, 6, "Profesional:", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, inv.Professional, "", 1, "L", false, 0, "")
	pdf.CellFormat(40, 6, "Fecha del Turno:", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, inv.AppointmentDate.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Detalle de los Servicios", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(20, 7, "Codigo", "1", 0, "C", true, 0, "")
	pdf.CellFormat(90, 7, "Producto / Servicio", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Cantidad", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Precio Unit.", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range inv.Lines {
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", line.ServiceID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(90, 7, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, "1.00", "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", line.Price), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Subtotal: $%.2f", inv.Subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Descuento: %.2f %%", inv.Discount*100), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total: $%.2f", inv.Total), "", 1, "R", false, 0, "")

	pdf.SetY(-25)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, "Este comprobante es una Factura B. Autorizado por la AFIP.", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Codigo de Autorizacion: XXXXXXXXXXXXX", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("can't render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
