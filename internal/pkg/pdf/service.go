// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/snackshop-backend/internal/config"
	"github.com/your-org/snackshop-backend/internal/domain/order"
	"github.com/your-org/snackshop-backend/internal/pkg/receipt"
)

// Service renders receipts as PDF documents. The content is exactly the
// canonical receipt text; the PDF adds layout only, no business logic.
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt renders an order's receipt as a PDF
func (s *Service) GenerateReceipt(o *order.Order) (*bytes.Buffer, error) {
	data := receiptData{
		StoreName: s.config.Shop.StoreName,
		OrderID:   o.OrderID,
		Lines:     strings.Split(strings.TrimRight(receipt.Format(o), "\n"), "\n"),
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data receiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// receiptData is the data passed to the receipt template
type receiptData struct {
	StoreName string
	OrderID   string
	Lines     []string
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.OrderID}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .store-name {
            font-size: 22px;
            font-weight: bold;
            margin-bottom: 20px;
            border-bottom: 2px solid #eee;
            padding-bottom: 10px;
        }
        .receipt {
            font-family: "Courier New", monospace;
            font-size: 13px;
            line-height: 1.6;
            white-space: pre;
        }
        .footer {
            margin-top: 40px;
            padding-top: 15px;
            border-top: 1px solid #eee;
            color: #666;
            font-size: 11px;
        }
    </style>
</head>
<body>
    <div class="store-name">{{.StoreName}}</div>
    <div class="receipt">{{range .Lines}}{{.}}
{{end}}</div>
    <div class="footer">Receipt {{.OrderID}}</div>
</body>
</html>
`
