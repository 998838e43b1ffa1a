// pix-broker/internal/handlers/types.go
package handlers

type CreatePixIn struct {
	LinkID       string `json:"linkId"`
	AccountID    string `json:"accountId"`
	CustomerName string `json:"customerName"`
}

type CreatePixOut struct {
	Success     bool   `json:"success"`
	PixCode     string `json:"pixCode,omitempty"`
	QRCodeImage string `json:"qrCodeImage,omitempty"`
	Error       string `json:"error,omitempty"`
}
